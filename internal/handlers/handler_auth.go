package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/middleware"
)

// authHandler handles signup, login and the one-time code flow.
type authHandler struct {
	registration portssvc.RegistrationSvcFacade
	auth         portssvc.AuthSvcFacade
	otp          portssvc.OTPSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		registration: services.Registration,
		auth:         services.Auth,
		otp:          services.OTP,
	}
}

// registerAuthRoutes sets up the routes for authentication.
// limits run before every credential-bearing endpoint.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, limits ...gin.HandlerFunc) {
	h := newAuthHandler(services)

	with := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limits...), handler)
	}

	rg.POST("/signup", with(h.signup)...)
	rg.POST("/login", with(h.login)...)
	rg.POST("/logout", h.logout)
	rg.POST("/google-signup", with(h.googleSignup)...)
	rg.POST("/google/exchange-code", with(h.exchangeGoogleCode)...)
	rg.POST("/send-otp", with(h.sendOTP)...)
	rg.POST("/verify-otp", with(h.verifyOTP)...)
}

// signup godoc
// @Summary Register a new account
// @Description Creates a customer or seller account. Sellers must upload a business permit (multipart).
// @Tags auth
// @Accept json,mpfd
// @Produce json
// @Param signup body dto.SignupRequest true "Account details"
// @Param businessPermit formData file false "Business permit (PDF or image), required for sellers"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindForm(c, &req, "Invalid signup request.") {
		return
	}

	files := &uploadedFiles{}
	defer files.close()
	permit, err := files.get(c, "businessPermit")
	if err != nil {
		fail(c, err)
		return
	}

	account, err := h.registration.Register(c.Request.Context(), req, permit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(account))
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Seller pending approval"
// @Failure 429 {object} dto.ErrorResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, "Username and password are required.") {
		return
	}

	identity, token, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in",
		"user_id", identity.UserID, "role", identity.Role)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		User:    dto.ToSessionUser(identity),
		Token:   token,
	})
}

// logout godoc
// @Summary Close the caller's login session
// @Description A bearer token identifies the session owner; the body is only read for anonymous callers.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param logout body dto.LogoutRequest false "Session owner"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /logout [post]
func (h *authHandler) logout(c *gin.Context) {
	var req dto.LogoutRequest
	if p := middleware.GetPrincipal(c); p != nil {
		req = dto.LogoutRequest{UserID: p.UserID, Role: p.Role}
	} else if !bindJSON(c, &req, "user_id and role are required.") {
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Logout recorded"))
}

// googleSignup godoc
// @Summary Sign in with a Google ID token
// @Description Logs a known account in, or returns the Google profile of an unknown one so the client can finish signup.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body dto.GoogleSignupRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse "Existing account"
// @Success 200 {object} dto.ProspectResponse "New user"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /google-signup [post]
func (h *authHandler) googleSignup(c *gin.Context) {
	var req dto.GoogleSignupRequest
	if !bindJSON(c, &req, "Google credential is required.") {
		return
	}
	result, token, err := h.auth.GoogleSignIn(c.Request.Context(), req.Credential)
	if err != nil {
		fail(c, err)
		return
	}
	renderFederated(c, result, token)
}

// exchangeGoogleCode godoc
// @Summary Exchange Google auth code
// @Description Trades a Google authorization code for an ID token and signs in with it.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req, "Authorization code is required.") {
		return
	}
	result, token, err := h.auth.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	renderFederated(c, result, token)
}

func renderFederated(c *gin.Context, result *domain.FederatedLoginResult, token string) {
	if result.IsNewUser {
		c.JSON(http.StatusOK, dto.ToProspectResponse(result.Prospect))
		return
	}
	isNew, requiresOTP := false, false
	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:      "success",
		Message:     "Login successful",
		User:        dto.ToSessionUser(result.Identity),
		Token:       token,
		IsNewUser:   &isNew,
		RequiresOTP: &requiresOTP,
	})
}

// sendOTP godoc
// @Summary Email a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Recipient"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.ErrorResponse "Email does not match the account"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to send OTP email"
// @Router /send-otp [post]
func (h *authHandler) sendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !bindJSON(c, &req, "A valid user_id and email are required.") {
		return
	}
	if err := h.otp.SendOTP(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("OTP sent to email"))
}

// verifyOTP godoc
// @Summary Verify a one-time code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Code"
// @Success 200 {object} dto.VerifyOTPResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired OTP"
// @Failure 403 {object} dto.ErrorResponse "Account signs in with a password"
// @Failure 429 {object} dto.ErrorResponse
// @Router /verify-otp [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !bindJSON(c, &req, "user_id and otp_code are required.") {
		return
	}
	identity, token, err := h.otp.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyOTPResponse{
		Status:  "success",
		Message: "OTP verified successfully",
		User:    dto.ToSessionUser(identity),
		Token:   token,
	})
}
