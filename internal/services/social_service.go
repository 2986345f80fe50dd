package services

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// SocialServiceImpl implements domain.SocialService
type SocialServiceImpl struct {
	userRepo domain.UserRepository
}

// NewSocialService creates a new social service
func NewSocialService(userRepo domain.UserRepository) domain.SocialService {
	return &SocialServiceImpl{userRepo: userRepo}
}

// FollowSeller implements domain.SocialService
func (s *SocialServiceImpl) FollowSeller(ctx context.Context, userID, sellerID string) error {
	if userID == sellerID {
		return domain.ErrSelfFollow
	}
	return s.userRepo.AddFollower(ctx, sellerID, userID)
}

// UnfollowSeller implements domain.SocialService. Unfollowing a seller the
// user never followed is a no-op.
func (s *SocialServiceImpl) UnfollowSeller(ctx context.Context, userID, sellerID string) error {
	return s.userRepo.RemoveFollower(ctx, sellerID, userID)
}

// GetSellerProfile implements domain.SocialService
func (s *SocialServiceImpl) GetSellerProfile(ctx context.Context, sellerID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, domain.ErrSellerNotFound
	}
	if !user.IsSeller {
		return nil, domain.ErrSellerNotFound
	}
	return user, nil
}
