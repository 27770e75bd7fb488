package ioc

import (
	"github.com/ecodeclub/eshop/internal/email"
	"github.com/ecodeclub/eshop/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyId"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewDirectMailService(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}
