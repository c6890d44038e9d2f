package item

import (
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ItemsModel = (*customItemsModel)(nil)

type (
	// ItemsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customItemsModel.
	ItemsModel interface {
		itemsModel
	}

	customItemsModel struct {
		*defaultItemsModel
	}
)

// NewItemsModel returns a model for the database table.
func NewItemsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ItemsModel {
	return &customItemsModel{
		defaultItemsModel: newItemsModel(conn, c, opts...),
	}
}

// UnitAmount converts the major-unit price into minor units, rounding half
// away from zero.
func (i *Items) UnitAmount() int64 {
	return i.Price.Shift(2).Round(0).IntPart()
}
