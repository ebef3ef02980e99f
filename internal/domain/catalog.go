package domain

import "time"

// Page is the Spring-style page envelope every paginated endpoint returns.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}

// Product is a storefront catalog entry.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Stock         int     `json:"stock"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Featured      bool    `json:"featured,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// OrderItem is a purchased line within an order.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is a placed order as the backend returns it.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"userId,omitempty"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount,omitempty"`
	Status          OrderStatus `json:"status"`
	CreatedAt       string      `json:"createdAt"`
	OrderNumber     string      `json:"orderNumber,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

// NewOrderItem is a line of an order creation request.
type NewOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// NewOrder is the payload for placing an order.
type NewOrder struct {
	ShippingAddress string         `json:"shippingAddress"`
	Notes           string         `json:"notes,omitempty"`
	Items           []NewOrderItem `json:"items"`
}

// UserStats summarizes the account's purchase history.
type UserStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalSpent    float64 `json:"totalSpent"`
	MemberSince   string  `json:"memberSince"`
}

// ProfileUpdate is the payload for updating the user profile.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// BlogAuthor identifies the author embedded in a blog post.
type BlogAuthor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// BlogPost is a published or draft storefront blog entry.
type BlogPost struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	ViewCount   int64      `json:"viewCount"`
	Tags        []string   `json:"tags"`
	Author      BlogAuthor `json:"author"`
	PublishedAt string     `json:"publishedAt,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// BlogPostRequest is the payload for creating or updating a blog post.
type BlogPostRequest struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Content   string   `json:"content"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Published *bool    `json:"published,omitempty"`
	Featured  *bool    `json:"featured,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// BlogComment is a comment on a blog post; replies nest one level deep.
type BlogComment struct {
	ID              int64         `json:"id"`
	Content         string        `json:"content"`
	BlogPostID      int64         `json:"blogPostId"`
	User            BlogAuthor    `json:"user"`
	ParentCommentID int64         `json:"parentCommentId,omitempty"`
	Approved        bool          `json:"approved"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
	Replies         []BlogComment `json:"replies"`
}

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID int64  `json:"parentCommentId,omitempty"`
}

// Testimonial is a customer testimonial, moderated before publication.
type Testimonial struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Rating    int    `json:"rating"`
	Avatar    string `json:"avatar,omitempty"`
	Location  string `json:"location,omitempty"`
	Approved  bool   `json:"approved"`
	Featured  bool   `json:"featured"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TestimonialRequest is the payload for submitting or editing a testimonial.
type TestimonialRequest struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Rating   int    `json:"rating"`
	Avatar   string `json:"avatar,omitempty"`
	Location string `json:"location,omitempty"`
}

// TestimonialStats summarizes the moderation queue for the admin dashboard.
type TestimonialStats struct {
	Total         int64 `json:"total"`
	TotalApproved int64 `json:"totalApproved"`
	TotalPending  int64 `json:"totalPending"`
	TotalFeatured int64 `json:"totalFeatured"`
}

// ContactInfo is the storefront's public contact card.
type ContactInfo struct {
	ID                   int64   `json:"id"`
	CompanyName          string  `json:"companyName"`
	Phone                string  `json:"phone"`
	Email                string  `json:"email"`
	Address              string  `json:"address"`
	City                 string  `json:"city,omitempty"`
	Country              string  `json:"country,omitempty"`
	Facebook             string  `json:"facebook,omitempty"`
	Instagram            string  `json:"instagram,omitempty"`
	Twitter              string  `json:"twitter,omitempty"`
	Whatsapp             string  `json:"whatsapp,omitempty"`
	BusinessHours        string  `json:"businessHours,omitempty"`
	BusinessHoursDetails string  `json:"businessHoursDetails,omitempty"`
	Latitude             float64 `json:"latitude,omitempty"`
	Longitude            float64 `json:"longitude,omitempty"`
	Description          string  `json:"description,omitempty"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// MessageStatus is the workflow state of a contact message.
type MessageStatus string

const (
	MessageNew      MessageStatus = "NEW"
	MessageRead     MessageStatus = "READ"
	MessageReplied  MessageStatus = "REPLIED"
	MessageArchived MessageStatus = "ARCHIVED"
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Subject    string        `json:"subject"`
	Message    string        `json:"message"`
	IPAddress  string        `json:"ipAddress,omitempty"`
	Status     MessageStatus `json:"status"`
	ReadAt     string        `json:"readAt,omitempty"`
	RepliedAt  string        `json:"repliedAt,omitempty"`
	AdminNotes string        `json:"adminNotes,omitempty"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
}

// ContactMessageRequest is the payload for the public contact form.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// LoyaltyTier is the customer's loyalty level.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "BRONZE"
	TierSilver LoyaltyTier = "SILVER"
	TierGold   LoyaltyTier = "GOLD"
)

// LoyaltyPoints is the account-level loyalty balance.
type LoyaltyPoints struct {
	TotalPoints               int64       `json:"totalPoints"`
	EarnedThisMonth           int64       `json:"earnedThisMonth"`
	EarnedTotal               int64       `json:"earnedTotal"`
	RedeemedTotal             int64       `json:"redeemedTotal"`
	ExpiringSoon              int64       `json:"expiringSoon"`
	MemberSince               string      `json:"memberSince"`
	Tier                      LoyaltyTier `json:"tier"`
	AvailableDiscountPercent  int         `json:"availableDiscountPercent"`
	PointsForNextDiscount     int64       `json:"pointsForNextDiscount"`
}

// LoyaltyTransaction is a single entry in the loyalty point ledger.
type LoyaltyTransaction struct {
	ID                  int64     `json:"id"`
	TransactionType     string    `json:"transactionType"`
	TransactionTypeName string    `json:"transactionTypeName"`
	Points              int64     `json:"points"`
	AmountSpent         float64   `json:"amountSpent,omitempty"`
	OrderID             int64     `json:"orderId,omitempty"`
	OrderNumber         string    `json:"orderNumber,omitempty"`
	Description         string    `json:"description"`
	CreatedAt           time.Time `json:"createdAt"`
	ExpiresAt           string    `json:"expiresAt,omitempty"`
	Active              bool      `json:"active"`
	Expired             bool      `json:"expired"`
}
