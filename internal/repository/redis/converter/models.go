package converter

// ItemInfoRedisModel — JSON-представление товара в кэше.
type ItemInfoRedisModel struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PriceCents   int64   `json:"price_cents"`
	CategoryID   *int64  `json:"category_id,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
	StockNone    int32   `json:"stock_none"`
	StockSmall   int32   `json:"stock_small"`
	StockMedium  int32   `json:"stock_medium"`
	StockLarge   int32   `json:"stock_large"`
	StockXL      int32   `json:"stock_extra_large"`
	ImageKey     *string `json:"image_key,omitempty"`
}
