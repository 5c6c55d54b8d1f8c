package config

import "sync"

// SiteConfig is the site metadata consumed by the renderer and the feed
// tooling. Every field is a plain string; SubscribersCount stays free text
// because it is updated by hand ("1.2k+", not a number).
type SiteConfig struct {
	SiteTitle   string `json:"siteTitle"`
	SiteURL     string `json:"siteUrl"`
	Description string `json:"description"`

	Username  string `json:"username"`
	Shortname string `json:"shortname"`

	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Medium    string `json:"medium"`
	DevTo     string `json:"devto"`
	Hashnode  string `json:"hashnode"`
	Instagram string `json:"instagram"`
	Goodreads string `json:"goodreads"`

	MailAddress string `json:"mailAddress"`

	Newsletter           string `json:"newsletter"`
	Kofi                 string `json:"kofi"`
	TwitterBotRepo       string `json:"twitterBotRepo"`
	HundredDaysOfCodeBot string `json:"hundredDaysOfCodeBot"`

	SubscribersCount string `json:"subscribersCount"`
}

var (
	siteOnce sync.Once
	site     *SiteConfig
)

// Site returns the one site configuration instance. Callers get the same
// pointer on every call and must treat the value as read only.
func Site() *SiteConfig {
	siteOnce.Do(func() {
		site = &SiteConfig{
			SiteTitle:   "Aman Mittal",
			SiteURL:     "https://amanhimself.dev",
			Description: "Software developer and technical writer. I write about React Native, Expo and the web.",

			Username:  "amanhimself",
			Shortname: "Aman",

			GitHub:    "https://github.com/amandeepmittal",
			Twitter:   "https://twitter.com/amanhimself",
			Medium:    "https://medium.com/@amanhimself",
			DevTo:     "https://dev.to/amanhimself",
			Hashnode:  "https://hashnode.com/@amanhimself",
			Instagram: "https://instagram.com/amanhimself",
			Goodreads: "https://www.goodreads.com/author/show/17657541.Aman_Mittal",

			MailAddress: "mailto:amanmittal.work@gmail.com",

			Newsletter:           "https://amanhimself.substack.com",
			Kofi:                 "https://ko-fi.com/amanhimself",
			TwitterBotRepo:       "https://github.com/amandeepmittal/100DaysOfCode",
			HundredDaysOfCodeBot: "https://twitter.com/_100DaysOfCode",

			SubscribersCount: "1.2k+",
		}
	})

	return site
}

// SavedTweets are named references to specific posts, cited from articles.
// Read only, keys unique, values are tweet URLs.
var SavedTweets = map[string]string{
	"firstHundredDaysOfCode": "https://twitter.com/amanhimself/status/1094401416719638528",
	"expoSdkThread":          "https://twitter.com/amanhimself/status/1285553882657157120",
}
