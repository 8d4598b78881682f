package models

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type DashboardStats struct {
	TotalEmployees int64             `json:"total_employees"`
	PresentToday   int64             `json:"present_today"`
	AbsentToday    int64             `json:"absent_today"`
	Departments    []DepartmentCount `json:"departments"`
}
