package dto

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swiftshop/swiftshop-api/internal/model"
)

// --- Auth ---

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// --- Users ---

type SaveUserRequest struct {
	Name  string     `json:"name" binding:"required"`
	Email string     `json:"email" binding:"required,email"`
	Photo string     `json:"photo"`
	Role  model.Role `json:"role"`
}

type ChangeRoleRequest struct {
	Role model.Role `json:"role" binding:"required,oneof=user seller admin"`
}

// --- Products ---

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// --- Carts ---

type AddCartItemRequest struct {
	Email     string             `json:"email" binding:"required,email"`
	ProductID primitive.ObjectID `json:"productId" binding:"required"`
	Name      string             `json:"name" binding:"required"`
	Image     string             `json:"image"`
	Price     float64            `json:"price" binding:"required,gt=0"`
	Quantity  int                `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int      `json:"quantity" binding:"required,min=1"`
	Price    *float64 `json:"price"`
}

// --- Orders ---

type CreateOrderRequest struct {
	Email   string            `json:"email" binding:"required,email"`
	Items   []model.OrderItem `json:"items" binding:"required,min=1"`
	Total   float64           `json:"total" binding:"required,gt=0"`
	Address string            `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=Pending Processing Delivered"`
}

// --- Payments ---

type CreateIntentRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	Email         string            `json:"email" binding:"required,email"`
	Amount        float64           `json:"amount" binding:"required,gt=0"`
	TransactionID string            `json:"transactionId"`
	OrderStatus   model.OrderStatus `json:"orderStatus"`
	FormattedDate string            `json:"formattedDate"`
}

type UpdatePaymentRequest struct {
	OrderStatus model.OrderStatus `json:"orderStatus" binding:"required,oneof=Pending Processing Delivered"`
}

// --- Reviews ---

type CreateReviewRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	Name    string  `json:"name" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"required"`
}

// --- Listing ---

// ListQuery is the shared pagination convention: pages is 1-indexed and is
// converted to skip = (pages-1)*size. Non-numeric input fails binding with 400.
type ListQuery struct {
	Size   int    `form:"size,default=10" binding:"min=1,max=100"`
	Pages  int    `form:"pages,default=1" binding:"min=1"`
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
}

func (q ListQuery) Skip() int64  { return int64((q.Pages - 1) * q.Size) }
func (q ListQuery) Limit() int64 { return int64(q.Size) }

// SortAscending reports whether the date sort is ascending; anything other
// than "asc" (including absent) sorts descending.
func (q ListQuery) SortAscending() bool { return q.Sort == "asc" }

type CountResponse struct {
	Count int64 `json:"count"`
}
