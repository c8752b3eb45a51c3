package leave

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Decided reports whether the request has left PENDING. Decided requests
// are terminal: further approve/reject calls fail with ErrAlreadyDecided.
func (s Status) Decided() bool {
	return s.Valid() && s != StatusPending
}

// Balance maps a LeaveTypeDefinition ID to remaining days. Entries are
// signed: approvals may drive a balance negative when an administrator
// bypasses the submission check. A missing entry reads as zero.
type Balance map[string]int

func (b Balance) Days(typeID string) int {
	return b[typeID]
}

func (b Balance) Clone() Balance {
	if b == nil {
		return nil
	}
	out := make(Balance, len(b))
	for typeID, days := range b {
		out[typeID] = days
	}
	return out
}

type LeaveTypeDefinition struct {
	ID             string `json:"id"`
	NameEn         string `json:"nameEn"`
	NameAr         string `json:"nameAr"`
	DefaultBalance int    `json:"defaultBalance"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password is either a plain legacy value or a bcrypt hash for accounts
	// created through Administration. Empty means the legacy fallback applies.
	Password   string  `json:"password,omitempty"`
	FullName   string  `json:"fullName"`
	Role       Role    `json:"role"`
	Balance    Balance `json:"balance"`
	ApproverID string  `json:"approverId,omitempty"`
}

func (u User) Clone() User {
	u.Balance = u.Balance.Clone()
	return u
}

type LeaveRequest struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	// UserName is a snapshot of the requester's name at submission time and
	// is deliberately not kept in sync with later edits.
	UserName        string `json:"userName"`
	TypeID          string `json:"typeId"`
	StartDate       Date   `json:"startDate"`
	EndDate         Date   `json:"endDate"`
	TotalDays       int    `json:"totalDays"`
	Reason          string `json:"reason"`
	Status          Status `json:"status"`
	CreatedAt       Date   `json:"createdAt"`
	ApproverComment string `json:"approverComment,omitempty"`
	ApprovedBy      string `json:"approvedBy,omitempty"`
}
