package svc

import (
	"context"
	"time"

	"Storefront/app/api/order/internal/config"
	"Storefront/app/common/paysession"
	"Storefront/app/common/snowflake"
	itemdal "Storefront/app/dal/item"
	orderdal "Storefront/app/dal/order"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// EventWriter is satisfied by *kafka.Writer.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ServiceContext struct {
	Config config.Config

	Items  itemdal.ItemsModel
	Orders orderdal.OrdersModel

	Payment paysession.Creator

	// nil unless KafkaConf names a broker and a topic
	KafkaWriter EventWriter
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	db := sqlx.NewMysql(c.MysqlConf.DataSource)

	sc := &ServiceContext{
		Config:  c,
		Items:   itemdal.NewItemsModel(db, c.CacheConf),
		Orders:  orderdal.NewOrdersModel(db, c.CacheConf),
		Payment: paysession.NewStripeCreator(c.StripeConf),
	}

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.OrderTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.OrderTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		}
	}

	return sc
}
