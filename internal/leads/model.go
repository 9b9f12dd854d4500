package leads

import "time"

// Contact is a lead from the general contact form. The server owns id
// and created_at; the form never supplies them.
type Contact struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	BusinessType    string    `bson:"business_type,omitempty" json:"business_type,omitempty"`
	ProjectBudget   string    `bson:"project_budget,omitempty" json:"project_budget,omitempty"`
	ProjectTimeline string    `bson:"project_timeline,omitempty" json:"project_timeline,omitempty"`
	ProjectDetail   string    `bson:"project_detail,omitempty" json:"project_detail,omitempty"`
	ReferenceFile   string    `bson:"reference_file,omitempty" json:"reference_file,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Quote is a lead from the quote request form. ReferenceImage is stored
// as the single extracted path; intake accepts an array, a CSV string, or
// an object with url/path.
type Quote struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	Phone              string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProjectType        string    `bson:"project_type,omitempty" json:"project_type,omitempty"`
	BudgetRange        string    `bson:"budget_range,omitempty" json:"budget_range,omitempty"`
	PreferredStyle     string    `bson:"preferred_style,omitempty" json:"preferred_style,omitempty"`
	WallDimension      string    `bson:"wall_dimension,omitempty" json:"wall_dimension,omitempty"`
	ProjectDeadline    string    `bson:"project_deadline,omitempty" json:"project_deadline,omitempty"`
	ProjectDescription string    `bson:"project_description,omitempty" json:"project_description,omitempty"`
	ReferenceImage     string    `bson:"reference_image,omitempty" json:"reference_image,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

type CreateContactRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	BusinessType    string `json:"business_type"`
	ProjectBudget   string `json:"project_budget"`
	ProjectTimeline string `json:"project_timeline"`
	ProjectDetail   string `json:"project_detail"`
	ReferenceFile   string `json:"reference_file"`
}

type CreateQuoteRequest struct {
	Name               string      `json:"name" validate:"required"`
	Email              string      `json:"email" validate:"required,email"`
	Phone              string      `json:"phone" validate:"omitempty,phone"`
	ProjectType        string      `json:"project_type"`
	BudgetRange        string      `json:"budget_range"`
	PreferredStyle     string      `json:"preferred_style"`
	WallDimension      string      `json:"wall_dimension"`
	ProjectDeadline    string      `json:"project_deadline"`
	ProjectDescription string      `json:"project_description"`
	ReferenceImage     interface{} `json:"reference_image"`
}
