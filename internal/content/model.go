package content

// Content entities are flat records with string identity. Relations are
// soft foreign keys by string id; nothing here enforces them.

type Category struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

type Collection struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Image       string   `bson:"image" json:"image"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	CategoryID  string   `bson:"category_id" json:"category_id"`
	Tags        []string `bson:"tags" json:"tags"`
}

type Project struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	Image        string   `bson:"image" json:"image"`
	CollectionID string   `bson:"collection_id" json:"collection_id"`
	MaterialUsed []string `bson:"material_used" json:"material_used"`
	PerfectFor   []string `bson:"perfect_for" json:"perfect_for"`
	Features     []string `bson:"features" json:"features"`
}

type Service struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Image       string `bson:"image" json:"image"`
	Description string `bson:"description" json:"description"`
	// free-text ("from $250"), not numeric
	Price string `bson:"price" json:"price"`
}

type Author struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
	Bio   string `bson:"bio" json:"bio"`
}

type Blog struct {
	ID       string   `bson:"_id,omitempty" json:"id"`
	Tag      string   `bson:"tag" json:"tag"`
	AuthorID string   `bson:"author_id" json:"author_id"`
	Title    string   `bson:"title" json:"title"`
	Content  string   `bson:"content" json:"content"`
	Image    string   `bson:"image" json:"image"`
	Tags     []string `bson:"tags" json:"tags"`
}

type Team struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}

type Review struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Name    string `bson:"client_name" json:"name"`
	Role    string `bson:"client_role" json:"role"`
	Project string `bson:"client_address" json:"project"`
	Rating  int    `bson:"rating" json:"rating"`
	Text    string `bson:"review" json:"text"`
	Image   string `bson:"client_image" json:"image"`
}
