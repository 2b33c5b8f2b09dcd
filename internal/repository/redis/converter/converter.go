//go:generate goverter gen github.com/DRSN-tech/inventory-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
)

// goverter:converter
// goverter:map Sizes.None StockNone
// goverter:map Sizes.Small StockSmall
// goverter:map Sizes.Medium StockMedium
// goverter:map Sizes.Large StockLarge
// goverter:map Sizes.ExtraLarge StockXL
type ItemInfoConverter interface {
	ToRedisModel(entity *usecase.ItemInfo) *ItemInfoRedisModel
	ToUseCase(model *ItemInfoRedisModel) *usecase.ItemInfo
}
