package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type unsplashResponse struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

type catFactResponse struct {
	Fact string `json:"fact"`
}

type dogFactResponse struct {
	Facts []string `json:"facts"`
}

// Static samples used when the image service is unconfigured or down
var fallbackAxolotlImages = []string{
	"https://c402277.ssl.cf1.rackcdn.com/photos/20852/images/magazine_medium/axolotl_WWsummer2021.jpg?1618758847",
	"https://images2.minutemediacdn.com/image/upload/c_crop,x_0,y_217,w_2115,h_1189/c_fill,w_1440,ar_1440:810,f_auto,q_auto,g_auto/images/voltaxMediaLibrary/mmsport/mentalfloss/01gwscsvw2yrt73s9sqj.jpg",
	"https://www.interactiveaquariumcancun.com/hubfs/Ajolote%20en%20acuario.jpg",
	"https://64.media.tumblr.com/91daa769ee35c0c9d88921eb7c0e0354/tumblr_n0038u3xLi1rdilhwo1_1280.jpg",
	"https://media.tenor.com/0JrWYOf9LmAAAAAM/axolotl-smile.gif",
}

var fallbackDogFacts = []string{
	"Dogs' noses are wet to help them absorb scent chemicals.",
	"A dog's sense of smell is about 40 times greater than ours.",
	"Dogs can hear sounds up to 4 times farther than humans.",
	"Dogs have three eyelids, including one to keep their eyes moist.",
	"The average dog can run about 19 mph.",
	"Dogs can understand up to 250 words and gestures.",
	"A dog's nose print is unique, just like a human's fingerprint.",
	"Dogs can dream just like humans do.",
	"The Basenji is the only dog breed that can't bark.",
	"Dogs can see in color, but not as vividly as humans.",
}

// HandleAxolotl posts a random axolotl image from Unsplash, falling back to a
// static sample list when no access key is configured or the call fails.
func (c *Commands) HandleAxolotl(ctx context.Context, req Request) error {
	image, err := c.fetchAxolotl(ctx)
	if err != nil {
		ctxlog.From(ctx).Debug("falling back to static axolotl images", "error", err)
		image = fallbackAxolotlImages[rand.Intn(len(fallbackAxolotlImages))]
	}
	return c.reply(ctx, req, fmt.Sprintf("🦎 *Random Axolotl:*\n%s", image))
}

func (c *Commands) fetchAxolotl(ctx context.Context) (string, error) {
	if c.cfg.UnsplashAccessKey == "" {
		return "", goerr.New("Unsplash access key not configured")
	}

	header := http.Header{}
	header.Set("Authorization", "Client-ID "+c.cfg.UnsplashAccessKey)

	var resp unsplashResponse
	err := c.web.GetJSON(ctx, c.endpoints.Unsplash+"?query=axolotl", header, &resp)
	c.countUpstream("unsplash", err)
	if err != nil {
		return "", err
	}
	if resp.URLs.Regular == "" {
		return "", goerr.New("no image found")
	}
	return resp.URLs.Regular, nil
}

// HandleCatFact posts a random cat fact
func (c *Commands) HandleCatFact(ctx context.Context, req Request) error {
	var resp catFactResponse
	err := c.web.GetJSON(ctx, c.endpoints.CatFact, nil, &resp)
	c.countUpstream("catfact", err)
	if err != nil || resp.Fact == "" {
		return c.reply(ctx, req, "Failed to fetch cat fact :(")
	}
	return c.reply(ctx, req, fmt.Sprintf("🐱 *Cat Fact:* %s", resp.Fact))
}

// HandleDogFact posts a random dog fact, with static samples as fallback
func (c *Commands) HandleDogFact(ctx context.Context, req Request) error {
	var resp dogFactResponse
	err := c.web.GetJSON(ctx, c.endpoints.DogFact, nil, &resp)
	c.countUpstream("dogfact", err)

	fact := ""
	if err == nil && len(resp.Facts) > 0 {
		fact = resp.Facts[0]
	}
	if fact == "" {
		ctxlog.From(ctx).Debug("falling back to static dog facts", "error", err)
		fact = fallbackDogFacts[rand.Intn(len(fallbackDogFacts))]
	}
	return c.reply(ctx, req, fmt.Sprintf("🐕 *Dog Fact:*\n%s", fact))
}
