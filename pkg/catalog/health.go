package catalog

import "context"

// CheckHealth asks the API whether it is up and returns its status message.
func (c *Client) CheckHealth(ctx context.Context) (string, error) {
	env, err := c.fetch(ctx, "health", "", HealthFailedMessage)
	if err != nil {
		return "", err
	}
	return env.message()
}
