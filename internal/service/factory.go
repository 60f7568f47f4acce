package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/p2p-escrow/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	LedgerService        *LedgerService
	UserService          *UserService
	PaymentMethodService *PaymentMethodService
	AdService            *AdvertisementService
	EscrowService        *EscrowService
	DisputeService       *DisputeService
	ChatService          *ChatService
}

type FactoryArgs struct {
	Notifier      Notifier
	PaymentWindow time.Duration
	Logger        *logrus.Logger
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	ledgerService, ledgerErr := NewLedgerService(unitOfWork, args.Logger)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %w", ledgerErr)
	}

	userService, userServiceErr := NewUserService(unitOfWork, ledgerService)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", userServiceErr)
	}

	pmService, pmServiceErr := NewPaymentMethodService(unitOfWork)
	if pmServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", pmServiceErr)
	}

	adService, adServiceErr := NewAdvertisementService(unitOfWork, ledgerService, args.Logger)
	if adServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", adServiceErr)
	}

	escrowService, escrowServiceErr := NewEscrowService(unitOfWork, ledgerService, args.Notifier, args.Logger)
	if escrowServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", escrowServiceErr)
	}
	escrowService.SetPaymentWindow(args.PaymentWindow)

	disputeService, disputeServiceErr := NewDisputeService(
		unitOfWork, ledgerService, args.Notifier, userService, args.Logger,
	)
	if disputeServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", disputeServiceErr)
	}

	chatService, chatServiceErr := NewChatService(unitOfWork, args.Notifier, userService, args.Logger)
	if chatServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", chatServiceErr)
	}

	return &AppServices{
		LedgerService:        ledgerService,
		UserService:          userService,
		PaymentMethodService: pmService,
		AdService:            adService,
		EscrowService:        escrowService,
		DisputeService:       disputeService,
		ChatService:          chatService,
	}, nil
}
