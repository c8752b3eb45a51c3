package store

import "smartleave/internal/domain/leave"

// SeedLeaveTypes returns the fixed five-entry catalog written on first read.
func SeedLeaveTypes() []leave.LeaveTypeDefinition {
	return []leave.LeaveTypeDefinition{
		{ID: "ANNUAL", NameEn: "Annual Leave", NameAr: "إجازة سنوية", DefaultBalance: 30, Color: "#2563eb", Icon: "BriefcaseIcon"},
		{ID: "SICK", NameEn: "Sick Leave", NameAr: "إجازة مرضية", DefaultBalance: 15, Color: "#ef4444", Icon: "ActivityIcon"},
		{ID: "CASUAL", NameEn: "Casual Leave", NameAr: "إجازة طارئة", DefaultBalance: 5, Color: "#f59e0b", Icon: "TrendingUpIcon"},
		{ID: "MATERNITY", NameEn: "Maternity Leave", NameAr: "إجازة أمومة", DefaultBalance: 90, Color: "#ec4899", Icon: "HeartIcon"},
		{ID: "UNPAID", NameEn: "Unpaid Leave", NameAr: "إجازة بدون راتب", DefaultBalance: 365, Color: "#64748b", Icon: "FileTextIcon"},
	}
}

// SeedUsers returns the initial admin and employee accounts. Passwords stay
// plain here to preserve the documented legacy login contract.
func SeedUsers() []leave.User {
	return []leave.User{
		{
			ID:       "1",
			Username: "admin",
			Password: "password123",
			FullName: "System Admin",
			Role:     leave.RoleAdmin,
			Balance:  leave.Balance{"ANNUAL": 30, "SICK": 15, "CASUAL": 5, "MATERNITY": 0, "UNPAID": 365},
		},
		{
			ID:       "2",
			Username: "ahmed",
			Password: "password123",
			FullName: "Ahmed Hassan",
			Role:     leave.RoleEmployee,
			Balance:  leave.Balance{"ANNUAL": 20, "SICK": 12, "CASUAL": 3, "MATERNITY": 0, "UNPAID": 365},
		},
	}
}
