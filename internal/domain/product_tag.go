package domain

// ProductDetail is the display data the storefront widget renders for a product.
type ProductDetail struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// ProductTags maps a post id to its ordered product ids.
type ProductTags map[string][]string

// ProductDetails maps a post id to the display data of its products.
type ProductDetails map[string][]ProductDetail

// ProductTagSet is everything stored for one shop.
type ProductTagSet struct {
	Tags    ProductTags    `json:"tags"`
	Details ProductDetails `json:"details"`
}

func NewProductTagSet() ProductTagSet {
	return ProductTagSet{
		Tags:    ProductTags{},
		Details: ProductDetails{},
	}
}

// StorefrontPost is a post as exposed to the storefront widget.
type StorefrontPost struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Caption   string          `json:"caption"`
	MediaURL  string          `json:"mediaUrl"`
	Permalink string          `json:"permalink"`
	MediaType string          `json:"mediaType"`
	LikeCount int             `json:"likeCount"`
	Products  []ProductDetail `json:"products"`
}
