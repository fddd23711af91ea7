package usecase

import (
	"context"
	"time"

	"github.com/clubkit/treasury/internal/domain"
)

// BankAccountUseCase handles bank account administration.
type BankAccountUseCase struct {
	bankRepo BankAccountRepository
	idGen    IDGenerator
}

// NewBankAccountUseCase creates a new BankAccountUseCase.
func NewBankAccountUseCase(bankRepo BankAccountRepository, idGen IDGenerator) *BankAccountUseCase {
	return &BankAccountUseCase{
		bankRepo: bankRepo,
		idGen:    idGen,
	}
}

// CreateBankAccountInput represents input for creating a bank account.
type CreateBankAccountInput struct {
	ClubID  string
	Name    string
	Address string
	IBAN    string
}

// CreateBankAccount creates a new bank account for a club.
func (uc *BankAccountUseCase) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*domain.BankAccount, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateIBAN(input.IBAN); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.BankAccount{
		ID:        uc.idGen.Generate(),
		ClubID:    input.ClubID,
		Name:      input.Name,
		Address:   input.Address,
		IBAN:      input.IBAN,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.bankRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetBankAccount retrieves a bank account of a club.
func (uc *BankAccountUseCase) GetBankAccount(ctx context.Context, clubID, id string) (*domain.BankAccount, error) {
	return uc.bankRepo.GetByID(ctx, clubID, id)
}

// ListBankAccountsInput represents input for listing bank accounts.
type ListBankAccountsInput struct {
	ClubID string
	Limit  int
	Offset int
}

// ListBankAccounts lists a club's bank accounts with pagination.
func (uc *BankAccountUseCase) ListBankAccounts(ctx context.Context, input ListBankAccountsInput) ([]*domain.BankAccount, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.bankRepo.List(ctx, input.ClubID, input.Limit, input.Offset)
}

// DeleteBankAccount removes a bank account from a club. Ledger entries that
// referenced it keep their history; the reference is set to null by the
// store, so deletion is never blocked by the audit trail.
func (uc *BankAccountUseCase) DeleteBankAccount(ctx context.Context, clubID, id string) error {
	return uc.bankRepo.Delete(ctx, clubID, id)
}
