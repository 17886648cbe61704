package catalog

// Story is a promotional post linked to a seller.
type Story struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	ImageURL  string `json:"image_url" yaml:"image_url"`
	Link      string `json:"link" yaml:"link"`
	SellerID  string `json:"seller_id" yaml:"seller_id"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// StoryList is a tolerant decode of the stories returned by one call.
type StoryList = Batch[Story]

func (s Story) identity() string { return s.ID }

func decodeStory(f fields) (Story, error) {
	var (
		s   Story
		err error
	)
	if s.ID, err = f.requiredID(); err != nil {
		return Story{}, err
	}
	if s.Title, err = f.requiredString("title"); err != nil {
		return Story{}, err
	}
	if s.ImageURL, err = f.requiredString("image_url"); err != nil {
		return Story{}, err
	}
	s.Link = f.optionalString("link")
	s.SellerID = f.optionalString("seller_id")
	s.CreatedAt = f.optionalString("created_at")
	return s, nil
}
