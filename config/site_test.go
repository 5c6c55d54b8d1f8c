package config

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteEveryFieldIsSet(t *testing.T) {
	site := Site()

	v := reflect.ValueOf(*site)
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		assert.NotEmpty(t, v.Field(i).String(), "field %s should not be empty", field.Name)
	}
}

func TestSiteDocumentedValues(t *testing.T) {
	site := Site()

	assert.Equal(t, "Aman Mittal", site.SiteTitle)
	assert.True(t, strings.HasPrefix(site.GitHub, "https://github.com/"))
	assert.True(t, strings.HasPrefix(site.MailAddress, "mailto:"))
}

func TestSiteReturnsTheSameInstance(t *testing.T) {
	first := Site()
	second := Site()

	assert.Same(t, first, second)
	assert.Equal(t, *first, *second)
}

func TestSavedTweetsEntries(t *testing.T) {
	require.Len(t, SavedTweets, 2)

	assert.Equal(t,
		"https://twitter.com/amanhimself/status/1094401416719638528",
		SavedTweets["firstHundredDaysOfCode"],
	)
	assert.Equal(t,
		"https://twitter.com/amanhimself/status/1285553882657157120",
		SavedTweets["expoSdkThread"],
	)
}

func TestSavedTweetsValuesAreURLs(t *testing.T) {
	for name, raw := range SavedTweets {
		u, err := url.Parse(raw)
		require.NoError(t, err, "entry %s", name)
		assert.Equal(t, "https", u.Scheme, "entry %s", name)
		assert.NotEmpty(t, u.Host, "entry %s", name)
	}
}
