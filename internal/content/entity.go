package content

// Entity is what a normalizer hands back to the transport layer: a fully
// shaped record that knows its id, its slug source and which of its fields
// hold image paths.
type Entity interface {
	EntityID() string
	SetID(id string)
	SlugTitle() string
	ResolveImages(fn func(string) string)
}

func (c *Category) EntityID() string                     { return c.ID }
func (c *Category) SetID(id string)                      { c.ID = id }
func (c *Category) SlugTitle() string                    { return c.Name }
func (c *Category) ResolveImages(fn func(string) string) {}

func (c *Collection) EntityID() string  { return c.ID }
func (c *Collection) SetID(id string)   { c.ID = id }
func (c *Collection) SlugTitle() string { return c.Title }
func (c *Collection) ResolveImages(fn func(string) string) {
	c.Image = fn(c.Image)
}

func (p *Project) EntityID() string  { return p.ID }
func (p *Project) SetID(id string)   { p.ID = id }
func (p *Project) SlugTitle() string { return p.Title }
func (p *Project) ResolveImages(fn func(string) string) {
	p.Image = fn(p.Image)
}

func (s *Service) EntityID() string  { return s.ID }
func (s *Service) SetID(id string)   { s.ID = id }
func (s *Service) SlugTitle() string { return s.Name }
func (s *Service) ResolveImages(fn func(string) string) {
	s.Image = fn(s.Image)
}

func (a *Author) EntityID() string  { return a.ID }
func (a *Author) SetID(id string)   { a.ID = id }
func (a *Author) SlugTitle() string { return a.Name }
func (a *Author) ResolveImages(fn func(string) string) {
	a.Image = fn(a.Image)
}

func (b *Blog) EntityID() string  { return b.ID }
func (b *Blog) SetID(id string)   { b.ID = id }
func (b *Blog) SlugTitle() string { return b.Title }
func (b *Blog) ResolveImages(fn func(string) string) {
	b.Image = fn(b.Image)
}

func (t *Team) EntityID() string  { return t.ID }
func (t *Team) SetID(id string)   { t.ID = id }
func (t *Team) SlugTitle() string { return t.Name }
func (t *Team) ResolveImages(fn func(string) string) {
	t.Image = fn(t.Image)
}

func (r *Review) EntityID() string  { return r.ID }
func (r *Review) SetID(id string)   { r.ID = id }
func (r *Review) SlugTitle() string { return r.Name }
func (r *Review) ResolveImages(fn func(string) string) {
	r.Image = fn(r.Image)
}
