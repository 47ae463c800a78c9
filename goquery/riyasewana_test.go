package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	vcgoquery "github.com/SudithAmarasinghe/VehicleComp/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const riyasewanaPage = `<html><body><ul>
<li class="item">
  <h2 class="more"><a href="/ad/toyota-aqua-2015-for-sale">Toyota Aqua 2015</a></h2>
  <img src="https://riyasewana.com/img/aqua.jpg">
  <div class="boxintxt b">Rs. 5,650,000</div>
  <div class="boxtext">
    <span>Kandy</span>
    <span>2015</span>
    <span>85,000 km</span>
  </div>
</li>
<li class="item">
  <h2 class="more"><a href="https://riyasewana.com/ad/honda-fit-gp5">Honda Fit GP5 2014</a></h2>
  <img data-src="https://riyasewana.com/img/fit.jpg">
  <div class="boxintxt b">Negotiable</div>
  <div class="boxtext">
    <span>Colombo</span>
  </div>
</li>
<li class="item">
  <div class="boxtext"><span>broken node, no title or link</span></div>
</li>
</ul></body></html>`

func TestRiyasewanaExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts listing fields from item nodes", func(t *testing.T) {
		t.Parallel()

		extractor := vcgoquery.NewRiyasewanaExtractor()
		listings, err := extractor.Extract(riyasewanaPage)
		require.NoError(t, err)
		require.Len(t, listings, 2)

		first := listings[0]
		assert.Equal(t, "Toyota Aqua 2015", first.Title)
		assert.Equal(t, "Rs. 5,650,000", first.Price)
		assert.Equal(t, "2015", first.Year)
		assert.Equal(t, "Toyota", first.Make)
		assert.Equal(t, "Aqua", first.Model)
		assert.Equal(t, "85,000 km", first.Mileage)
		assert.Equal(t, "Kandy", first.Location)
		assert.Equal(t, "Used", first.Condition)
		assert.Equal(t, "https://riyasewana.com/ad/toyota-aqua-2015-for-sale", first.URL)
		assert.Equal(t, "https://riyasewana.com/img/aqua.jpg", first.ImageURL)
		assert.Equal(t, vehiclecomp.SourceRiyasewana, first.Source)

		second := listings[1]
		assert.Equal(t, "Honda Fit GP5 2014", second.Title)
		assert.Equal(t, "2014", second.Year) // from title, no year span
		assert.Equal(t, "Colombo", second.Location)
		assert.Empty(t, second.Mileage)
		assert.Equal(t, "https://riyasewana.com/ad/honda-fit-gp5", second.URL)
		assert.Equal(t, "https://riyasewana.com/img/fit.jpg", second.ImageURL)
	})

	t.Run("falls back to div.item selector", func(t *testing.T) {
		t.Parallel()

		page := strings.ReplaceAll(riyasewanaPage, `li class="item"`, `div class="item"`)
		page = strings.ReplaceAll(page, "</li>", "</div>")

		extractor := vcgoquery.NewRiyasewanaExtractor()
		listings, err := extractor.Extract(page)
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("caps output at MaxListings", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<html><body>")
		for i := 0; i < 25; i++ {
			fmt.Fprintf(&sb, `<li class="item"><h2 class="more"><a href="/ad/%d">Toyota Vitz 2017</a></h2></li>`, i)
		}
		sb.WriteString("</body></html>")

		extractor := vcgoquery.NewRiyasewanaExtractor()
		listings, err := extractor.Extract(sb.String())
		require.NoError(t, err)
		assert.Len(t, listings, vcgoquery.DefaultMaxListings)
	})

	t.Run("no listing nodes yields empty result", func(t *testing.T) {
		t.Parallel()

		extractor := vcgoquery.NewRiyasewanaExtractor()
		listings, err := extractor.Extract("<html><body><p>no results</p></body></html>")
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}
