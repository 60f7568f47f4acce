package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/shopspring/decimal"
)

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	wallets  WalletOpener
}

func NewUserService(u uow.UOW, wallets WalletOpener) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		wallets:  wallets,
	}, nil
}

type RegisterUserArgs struct {
	Username       string
	OpeningBalance decimal.Decimal
	IsArbiter      bool
}

// Register создает пользователя вместе с его кошельком. Возвращает созданного пользователя и кошелек.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, *domain.Wallet, error) {
	username := strings.TrimSpace(args.Username)
	if username == "" {
		return nil, nil, domain.NewValidationError("username", "is required")
	}

	var user *domain.User
	var wallet *domain.Wallet
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var userErr, walletErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username:  username,
			IsArbiter: args.IsArbiter,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		wallet, walletErr = s.wallets.OpenWallet(c, tx, user.ID, args.OpeningBalance)
		return walletErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("registering user: %w", txErr)
	}
	return user, wallet, nil
}

// Profile возвращает публичный профиль пользователя.
func (s *UserService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user profile: %w", err)
	}
	return user, nil
}

func (s *UserService) IsArbiter(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("checking arbiter privilege: %w", err)
	}
	return user.IsArbiter, nil
}
