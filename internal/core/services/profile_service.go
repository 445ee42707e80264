package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/platform/upload"
	"github.com/vinque/vinque_backend/internal/utils"
)

const profileImageField = "profile_image"

// profileService implements ProfileSvcFacade.
type profileService struct {
	BaseService
	profiles      portsrepo.ProfileRepositoryFacade
	files         *fileKeeper
	maxImageBytes int64
}

// NewProfileService creates the customer and seller profile service.
func NewProfileService(profiles portsrepo.ProfileRepositoryFacade, files *fileKeeper, maxImageBytes int64) portssvc.ProfileSvcFacade {
	return &profileService{profiles: profiles, files: files, maxImageBytes: maxImageBytes}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64) (*domain.CustomerProfile, error) {
	if err := s.AuthorizeCustomer(ctx, principal, customerID, "Unauthorized to view this profile"); err != nil {
		return nil, err
	}
	return s.profiles.FindCustomerProfile(ctx, customerID)
}

func (s *profileService) GetStore(ctx context.Context, sellerID int64) (*domain.Store, error) {
	return s.profiles.FindStore(ctx, sellerID)
}

func (s *profileService) GetSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error) {
	return s.profiles.FindSellerProfile(ctx, sellerID)
}

// storePicture inspects and writes a profile picture into batch.
func (s *profileService) storePicture(ctx context.Context, batch *uploadBatch, picture *domain.FileUpload) (*string, error) {
	if picture == nil {
		return nil, nil
	}
	inspected, err := upload.Inspect(*picture, upload.ImagePolicy(profileImageField, s.maxImageBytes))
	if err != nil {
		return nil, err
	}
	key, err := batch.Put(ctx, ProfileDir, inspected)
	if err != nil {
		s.LogError(ctx, err, "Failed to store profile image")
		return nil, apperrors.NewUpstreamError("Failed to store profile image", err)
	}
	return &key, nil
}

func (s *profileService) UpdateCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64, form dto.CustomerProfileForm, picture *domain.FileUpload) (*string, error) {
	if err := s.AuthorizeCustomer(ctx, principal, customerID, "Unauthorized to update this profile"); err != nil {
		return nil, err
	}
	update := domain.CustomerProfileUpdate{
		Username:  strings.TrimSpace(form.Username),
		Phone:     strings.TrimSpace(form.Phone),
		Address:   strings.TrimSpace(form.Address),
		Email:     strings.TrimSpace(form.Email),
		AboutInfo: strings.TrimSpace(form.AboutInfo),
	}
	if update.Username == "" || update.Phone == "" || update.Address == "" || update.Email == "" {
		return nil, apperrors.NewValidationError("Username, phone number, address and email are required.")
	}
	if !emailPattern.MatchString(update.Email) {
		return nil, apperrors.NewValidationError("Invalid email format.")
	}

	batch := s.files.begin()
	defer batch.Release(ctx)

	key, err := s.storePicture(ctx, batch, picture)
	if err != nil {
		return nil, err
	}
	update.ProfilePic = key

	replaced, err := s.profiles.UpdateCustomerProfile(ctx, customerID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer profile", slog.Int64("customer_id", customerID))
		return nil, err
	}
	batch.Commit()
	if replaced != nil {
		s.files.nudge([]string{*replaced})
	}
	s.LogInfo(ctx, "Customer profile updated", slog.Int64("customer_id", customerID), slog.Bool("new_picture", key != nil))

	if key != nil {
		return key, nil
	}
	current, err := s.profiles.FindCustomerPicture(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read customer picture after update", slog.Int64("customer_id", customerID))
		return nil, nil
	}
	return current, nil
}

func (s *profileService) UpdateSellerProfile(ctx context.Context, principal *domain.Principal, sellerID int64, form dto.SellerProfileForm, picture *domain.FileUpload) (*string, error) {
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to update this store"); err != nil {
		return nil, err
	}
	update := domain.SellerProfileUpdate{
		BusinessName:        strings.TrimSpace(form.BusinessName),
		BusinessDescription: strings.TrimSpace(form.BusinessDescription),
		BusinessAddress:     strings.TrimSpace(form.BusinessAddress),
		Phone:               strings.TrimSpace(form.Phone),
	}
	if update.BusinessName == "" || update.BusinessAddress == "" || update.Phone == "" {
		return nil, apperrors.NewValidationError("Business name, business address and phone number are required.")
	}
	pictureURL := strings.TrimSpace(form.ProfilePicURL)
	if picture == nil && pictureURL != "" && !utils.IsExternalURL(pictureURL) {
		return nil, apperrors.NewValidationError("profile_pic_url must be an http(s) URL.")
	}

	batch := s.files.begin()
	defer batch.Release(ctx)

	key, err := s.storePicture(ctx, batch, picture)
	if err != nil {
		return nil, err
	}
	update.SellerImage = key
	if key == nil && pictureURL != "" {
		update.SellerImage = &pictureURL
	}

	replaced, err := s.profiles.UpdateSellerProfile(ctx, sellerID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update seller profile", slog.Int64("seller_id", sellerID))
		return nil, err
	}
	batch.Commit()
	if replaced != nil {
		s.files.nudge([]string{*replaced})
	}
	s.LogInfo(ctx, "Seller profile updated", slog.Int64("seller_id", sellerID), slog.Bool("new_picture", update.SellerImage != nil))

	if update.SellerImage != nil {
		return update.SellerImage, nil
	}
	current, err := s.profiles.FindSellerProfile(ctx, sellerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read seller image after update", slog.Int64("seller_id", sellerID))
		return nil, nil
	}
	return current.SellerImage, nil
}
