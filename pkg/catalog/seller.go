package catalog

// Seller is a storefront merchant and their messenger links.
type Seller struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	AvatarURL    string `json:"avatar_url" yaml:"avatar_url"`
	TelegramURL  string `json:"telegram_url" yaml:"telegram_url"`
	VKURL        string `json:"vk_url" yaml:"vk_url"`
	WhatsappURL  string `json:"whatsapp_url" yaml:"whatsapp_url"`
	InstagramURL string `json:"instagram_url" yaml:"instagram_url"`
}

// SellerList is a tolerant decode of the sellers returned by one call.
type SellerList = Batch[Seller]

func (s Seller) identity() string { return s.ID }

func decodeSeller(f fields) (Seller, error) {
	var (
		s   Seller
		err error
	)
	if s.ID, err = f.requiredID(); err != nil {
		return Seller{}, err
	}
	if s.Name, err = f.requiredString("name"); err != nil {
		return Seller{}, err
	}
	s.AvatarURL = f.optionalString("avatar_url")
	s.TelegramURL = f.optionalString("telegram_url")
	s.VKURL = f.optionalString("vk_url")
	s.WhatsappURL = f.optionalString("whatsapp_url")
	s.InstagramURL = f.optionalString("instagram_url")
	return s, nil
}
