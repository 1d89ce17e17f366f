package models

type StatsPublic struct {
	TotalUsers   int64 `json:"total_users"`
	TotalCourses int64 `json:"total_courses"`
}
