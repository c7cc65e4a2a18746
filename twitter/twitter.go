package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/config"
	"github.com/dghubble/oauth1"
)

const defaultCreateTweetUrl = "https://api.twitter.com/2/tweets"

type createTweetRequest struct {
	Text string `json:"text"`
}

type createTweetResponse struct {
	Data struct {
		Id   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
	// Populated on API errors
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Twitter posts tweets through the v2 API with OAuth 1.0a user context.
type Twitter struct {
	httpClient *http.Client
	url        string
}

func New(cnfg config.AppConfigTwitter) *Twitter {
	oauthCnfg := oauth1.NewConfig(cnfg.ApiKey, cnfg.ApiSecret)
	token := oauth1.NewToken(cnfg.AccessToken, cnfg.AccessTokenSecret)
	httpClient := oauthCnfg.Client(oauth1.NoContext, token)
	httpClient.Timeout = 10 * time.Second
	return &Twitter{httpClient: httpClient, url: defaultCreateTweetUrl}
}

// PostTweet publishes text as a new tweet and returns the created tweet id.
// Not idempotent, every call creates a new tweet.
func (t *Twitter) PostTweet(ctx context.Context, text string) (string, error) {
	reqBody, err := json.Marshal(createTweetRequest{Text: text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	res, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to post tweet: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var resBody createTweetResponse
	if res.StatusCode != http.StatusCreated && res.StatusCode != http.StatusOK {
		if err := json.Unmarshal(body, &resBody); err == nil && resBody.Detail != "" {
			return "", fmt.Errorf("got status %s: %s", res.Status, resBody.Detail)
		}
		return "", fmt.Errorf("got status %s", res.Status)
	}

	if err := json.Unmarshal(body, &resBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return resBody.Data.Id, nil
}
