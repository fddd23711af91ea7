package dto

import (
	"time"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// CreateClubRequest represents a request to create a club.
type CreateClubRequest struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateClubRequest) ToUseCaseInput() usecase.CreateClubInput {
	return usecase.CreateClubInput{
		Name:      r.Name,
		Subdomain: r.Subdomain,
	}
}

// CreateMemberRequest represents a request to create a member.
type CreateMemberRequest struct {
	Name string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMemberRequest) ToUseCaseInput(clubID string) usecase.CreateMemberInput {
	return usecase.CreateMemberInput{
		ClubID: clubID,
		Name:   r.Name,
	}
}

// CreateBankAccountRequest represents a request to create a bank account.
type CreateBankAccountRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	IBAN    string `json:"iban"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBankAccountRequest) ToUseCaseInput(clubID string) usecase.CreateBankAccountInput {
	return usecase.CreateBankAccountInput{
		ClubID:  clubID,
		Name:    r.Name,
		Address: r.Address,
		IBAN:    r.IBAN,
	}
}

// CreditMemberRequest represents a request to credit a member balance.
// Amounts travel as decimal strings so no float precision is lost in
// transit.
type CreditMemberRequest struct {
	Amount      string     `json:"amount"`
	Description string     `json:"description"`
	OperationAt *time.Time `json:"operation_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreditMemberRequest) ToUseCaseInput(principal domain.Principal, memberID string) (usecase.CreditMemberInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.CreditMemberInput{}, err
	}

	return usecase.CreditMemberInput{
		Principal:   principal,
		MemberID:    memberID,
		Amount:      amount,
		Description: r.Description,
		OperationAt: r.OperationAt,
	}, nil
}

// TransferRequest represents a request to move money between a bank account
// and the cash fund.
type TransferRequest struct {
	BankAccountID string     `json:"bank_account_id"`
	Amount        string     `json:"amount"`
	Description   string     `json:"description"`
	OperationAt   *time.Time `json:"operation_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput(principal domain.Principal) (usecase.TransferInput, error) {
	amount, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return usecase.TransferInput{}, err
	}

	return usecase.TransferInput{
		Principal:     principal,
		BankAccountID: r.BankAccountID,
		Amount:        amount,
		Description:   r.Description,
		OperationAt:   r.OperationAt,
	}, nil
}
