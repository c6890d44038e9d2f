package config

import (
	"Storefront/app/common/paysession"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

type Config struct {
	rest.RestConf

	// Registration is skipped when Consul.Host is empty.
	Consul consul.Conf `json:",optional"`

	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf

	LogConf logx.LogConf

	KafkaConf KafkaConf `json:",optional"`

	StripeConf paysession.StripeConf

	SnowflakeNode int64 `json:",optional"`
}

type KafkaConf struct {
	Broker     []string `json:",optional"`
	OrderTopic string   `json:",optional"`
}
