package dto

import (
	"time"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// ClubResponse represents a club in API responses.
type ClubResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClubFromDomain converts a domain club to a response.
func ClubFromDomain(c *domain.Club) *ClubResponse {
	return &ClubResponse{
		ID:        c.ID,
		Name:      c.Name,
		Subdomain: c.Subdomain,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClubsFromDomain converts domain clubs to responses.
func ClubsFromDomain(clubs []*domain.Club) []*ClubResponse {
	result := make([]*ClubResponse, len(clubs))
	for i, c := range clubs {
		result[i] = ClubFromDomain(c)
	}
	return result
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID        string        `json:"id"`
	ClubID    string        `json:"club_id"`
	Name      string        `json:"name"`
	Balance   domain.Amount `json:"balance"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MemberFromDomain converts a domain member to a response.
func MemberFromDomain(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		ClubID:    m.ClubID,
		Name:      m.Name,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MembersFromDomain converts domain members to responses.
func MembersFromDomain(members []*domain.Member) []*MemberResponse {
	result := make([]*MemberResponse, len(members))
	for i, m := range members {
		result[i] = MemberFromDomain(m)
	}
	return result
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	IBAN      string    `json:"iban"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BankAccountFromDomain converts a domain bank account to a response.
func BankAccountFromDomain(a *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:        a.ID,
		ClubID:    a.ClubID,
		Name:      a.Name,
		Address:   a.Address,
		IBAN:      a.IBAN,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// BankAccountsFromDomain converts domain bank accounts to responses.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = BankAccountFromDomain(a)
	}
	return result
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID            string        `json:"id"`
	ClubID        string        `json:"club_id"`
	ActingUserID  string        `json:"acting_user_id"`
	MemberID      *string       `json:"member_id,omitempty"`
	BankAccountID *string       `json:"bank_account_id,omitempty"`
	OperationType string        `json:"operation_type"`
	Amount        domain.Amount `json:"amount"`
	Description   string        `json:"description,omitempty"`
	OperationAt   time.Time     `json:"operation_at"`
	CreatedAt     time.Time     `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		ClubID:        e.ClubID,
		ActingUserID:  e.ActingUserID,
		MemberID:      e.MemberID,
		BankAccountID: e.BankAccountID,
		OperationType: string(e.OperationType),
		Amount:        e.Amount,
		Description:   e.Description,
		OperationAt:   e.OperationAt,
		CreatedAt:     e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// CreditResultResponse is the outcome of a credit operation.
type CreditResultResponse struct {
	EntryID       string        `json:"entry_id"`
	MemberBalance domain.Amount `json:"member_balance"`
}

// TransferResultResponse is the outcome of a transfer operation.
type TransferResultResponse struct {
	EntryID     string        `json:"entry_id"`
	FundBalance domain.Amount `json:"fund_balance"`
}

// FundSnapshotResponse represents the cash fund state.
type FundSnapshotResponse struct {
	Balance       domain.Amount `json:"balance"`
	TotalCredited domain.Amount `json:"total_credited"`
	TotalDebited  domain.Amount `json:"total_debited"`
}

// FundSnapshotFromUseCase converts a fund snapshot to a response.
func FundSnapshotFromUseCase(s *usecase.FundSnapshot) *FundSnapshotResponse {
	return &FundSnapshotResponse{
		Balance:       s.Balance,
		TotalCredited: s.TotalCredited,
		TotalDebited:  s.TotalDebited,
	}
}

// StatementLineResponse is one credit entry with its running total.
type StatementLineResponse struct {
	Entry          *EntryResponse `json:"entry"`
	RunningBalance domain.Amount  `json:"running_balance"`
}

// MemberStatementResponse represents a member's credit history.
type MemberStatementResponse struct {
	MemberID        string                  `json:"member_id"`
	Lines           []StatementLineResponse `json:"lines"`
	StoredBalance   domain.Amount           `json:"stored_balance"`
	ComputedBalance domain.Amount           `json:"computed_balance"`
	Consistent      bool                    `json:"consistent"`
}

// MemberStatementFromUseCase converts a member statement to a response.
func MemberStatementFromUseCase(s *usecase.MemberStatement) *MemberStatementResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = StatementLineResponse{
			Entry:          EntryFromDomain(line.Entry),
			RunningBalance: line.RunningBalance,
		}
	}

	return &MemberStatementResponse{
		MemberID:        s.MemberID,
		Lines:           lines,
		StoredBalance:   s.StoredBalance,
		ComputedBalance: s.ComputedBalance,
		Consistent:      s.Consistent,
	}
}

// ConsistencyReportResponse represents a fund consistency check.
type ConsistencyReportResponse struct {
	ClubID          string        `json:"club_id"`
	StoredBalance   domain.Amount `json:"stored_balance"`
	ComputedBalance domain.Amount `json:"computed_balance"`
	Difference      domain.Amount `json:"difference"`
	Consistent      bool          `json:"consistent"`
	CheckedAt       time.Time     `json:"checked_at"`
}

// ConsistencyReportFromUseCase converts a consistency report to a response.
func ConsistencyReportFromUseCase(r *usecase.FundConsistencyReport) *ConsistencyReportResponse {
	return &ConsistencyReportResponse{
		ClubID:          r.ClubID,
		StoredBalance:   r.StoredBalance,
		ComputedBalance: r.ComputedBalance,
		Difference:      r.Difference,
		Consistent:      r.Consistent,
		CheckedAt:       r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
