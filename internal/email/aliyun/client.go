package aliyun

import (
	"context"
	"fmt"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/eshop/internal/email"
)

// DirectMailService 阿里云邮件推送实现
type DirectMailService struct {
	client      *dm20151123.Client
	accountName string
}

// NewDirectMailService accountName 是控制台里配置的发信地址
func NewDirectMailService(accessKeyID, accessKeySecret, accountName string) (*DirectMailService, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMailService{client: client, accountName: accountName}, nil
}

func (s *DirectMailService) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName:    tea.String(s.accountName),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := s.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		if sdkError, ok := err.(*tea.SDKError); ok {
			return fmt.Errorf("阿里云邮件推送失败: %s", tea.StringValue(sdkError.Message))
		}
		return fmt.Errorf("阿里云邮件推送失败: %w", err)
	}
	return nil
}
