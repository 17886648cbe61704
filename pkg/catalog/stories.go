package catalog

import "context"

// ListStories fetches every story.
func (c *Client) ListStories(ctx context.Context) (StoryList, error) {
	return fetchList(ctx, c, "stories", "", decodeStory)
}
