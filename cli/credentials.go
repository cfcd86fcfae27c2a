package cli

import (
	"context"
	"fmt"

	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

// credentials resolves the login user and password, reading them from a scy
// secret when one is configured.
func (c *LoginCommand) credentials(ctx context.Context) (string, string, error) {
	if c.Secret == "" {
		if c.Username == "" || c.Password == "" {
			return "", "", fmt.Errorf("username and password are required (use -U/-P or --secret)")
		}
		return c.Username, c.Password, nil
	}
	resource := scy.NewResource(&cred.Basic{}, c.Secret, c.Key)
	secret, err := scy.New().Load(ctx, resource)
	if err != nil {
		return "", "", fmt.Errorf("failed to load secret %v: %w", c.Secret, err)
	}
	var basic *cred.Basic
	switch actual := secret.Target.(type) {
	case *cred.Basic:
		basic = actual
	case cred.Basic:
		basic = &actual
	default:
		return "", "", fmt.Errorf("unsupported secret type %T", secret.Target)
	}
	username := basic.Username
	if c.Username != "" {
		username = c.Username
	}
	return username, basic.Password, nil
}
