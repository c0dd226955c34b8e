package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type CreateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type CreateAnswerRequest struct {
	Content string `json:"content"`
}

type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
	Color       string `json:"color,omitempty"`
}

type VoteRequest struct {
	Direction VoteState `json:"direction" binding:"required,oneof=up down"`
}

type VoteResult struct {
	Votes    int       `json:"votes"`
	UserVote VoteState `json:"user_vote"`
}

type QuestionListParams struct {
	Filter QuestionFilter `form:"filter,default=newest"`
	TagID  string         `form:"tag_id"`
	Search string         `form:"search"`
	Page   int            `form:"page,default=1"`
	Limit  int            `form:"limit"`
}

type QuestionDetail struct {
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}

type BookmarkResult struct {
	IsBookmarked bool `json:"is_bookmarked"`
}

type ChangeRoleRequest struct {
	Role UserRole `json:"role" binding:"required,oneof=guest user admin"`
}

type CreateReportRequest struct {
	ContentType SubjectType `json:"content_type" binding:"required,oneof=question answer"`
	ContentID   string      `json:"content_id" binding:"required"`
	Reason      string      `json:"reason" binding:"required"`
}

type UpdateReportStatusRequest struct {
	Status        ReportStatus `json:"status" binding:"required,oneof=pending resolved dismissed"`
	RemoveContent bool         `json:"remove_content"`
}

type ReportListParams struct {
	Status string `form:"status"`
	Search string `form:"search"`
}
