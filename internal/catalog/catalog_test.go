package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Default(t *testing.T) {
	c, issues, err := Build(Default())
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Empty(t, issues, "built-in catalogue should reconcile cleanly")
	assert.Equal(t, 15, c.Len())

	sized := 0
	for _, p := range c.Products() {
		if p.IsSized() {
			sized++
			assert.Len(t, p.Sizes, 3, p.Name)
			assert.Empty(t, p.DefaultURL, p.Name)
			continue
		}
		assert.NotEmpty(t, p.DefaultURL, p.Name)
	}
	assert.Equal(t, 12, sized)
}

func TestBuild_ReconcilesAlias(t *testing.T) {
	c, _, err := Build(Default())
	require.NoError(t, err)

	entry, ok := c.Lookup("Red Prawn/Ang Hae")
	require.True(t, ok)
	oneKg, ok := entry.Size("1kg")
	require.True(t, ok)
	assert.Equal(t, "RM30", oneKg.Price)
	assert.Equal(t, "https://buy.stripe.com/7sYeVecgM7UG23Bddp1Jm0b", oneKg.PaymentURL)

	_, ok = c.Lookup("Red Prawn/Ang bak")
	assert.False(t, ok, "alias spelling must not survive as a product")
}

func TestBuild_Issues(t *testing.T) {
	src := &Source{
		Aliases: map[string]string{
			"Old Name": "New Name",
		},
		PaymentLinks: map[string]map[string]string{
			"Sized": {
				"1kg":          "https://pay.example/1",
				"2kg":          "https://pay.example/2",
				"3kg":          "   ",
				"5kg":          "https://pay.example/5",
				"7kg":          "https://pay.example/7",
				DefaultSizeKey: "https://pay.example/default",
			},
			"Package":  {DefaultSizeKey: "https://pay.example/pkg"},
			"Nothing":  {},
			"New Name": {"1kg": "https://pay.example/new"},
		},
		Prices: map[string]map[string]string{
			"Sized": {
				"1kg": "RM10",
				"3kg": "RM30",
				"4kg": "RM40",
				"7kg": "",
			},
			"Package":  {DefaultSizeKey: "1500"},
			"Old Name": {"1kg": "RM1"},
			"New Name": {"1kg": "RM2"},
		},
	}

	c, issues, err := Build(src)
	require.NoError(t, err)

	kinds := make(map[IssueKind][]Issue)
	for _, is := range issues {
		kinds[is.Kind] = append(kinds[is.Kind], is)
	}

	require.Len(t, kinds[IssueLinkWithoutPrice], 2)
	assert.ElementsMatch(t, []string{"2kg", "5kg"},
		[]string{kinds[IssueLinkWithoutPrice][0].Size, kinds[IssueLinkWithoutPrice][1].Size})
	require.Len(t, kinds[IssuePriceWithoutLink], 1)
	assert.Equal(t, "4kg", kinds[IssuePriceWithoutLink][0].Size)
	require.Len(t, kinds[IssueEmptyURL], 1)
	assert.Equal(t, "3kg", kinds[IssueEmptyURL][0].Size)
	require.Len(t, kinds[IssueEmptyPrice], 1)
	assert.Equal(t, "7kg", kinds[IssueEmptyPrice][0].Size)
	require.Len(t, kinds[IssueDefaultAndSized], 1)
	assert.Equal(t, "Sized", kinds[IssueDefaultAndSized][0].Product)
	require.Len(t, kinds[IssueNoPricing], 1)
	assert.Equal(t, "Nothing", kinds[IssueNoPricing][0].Product)
	require.Len(t, kinds[IssueAliasConflict], 1)
	assert.Equal(t, "New Name", kinds[IssueAliasConflict][0].Product)

	sized, ok := c.Lookup("Sized")
	require.True(t, ok)
	require.Len(t, sized.Sizes, 1)
	assert.Equal(t, "1kg", sized.Sizes[0].Size)
	assert.Empty(t, sized.DefaultURL)

	pkg, ok := c.Lookup("Package")
	require.True(t, ok)
	assert.Equal(t, "https://pay.example/pkg", pkg.DefaultURL)
	assert.Equal(t, "1500", pkg.DefaultPrice)

	renamed, ok := c.Lookup("New Name")
	require.True(t, ok)
	assert.Equal(t, "RM2", renamed.Sizes[0].Price, "canonical entry wins over alias")

	_, ok = c.Lookup("Nothing")
	assert.False(t, ok)
}

func TestBuild_AliasConflicts(t *testing.T) {
	tests := []struct {
		name       string
		src        *Source
		price      string
		conflicts  int
		detailPart string
	}{
		{
			name: "Two aliases share a missing canonical name",
			src: &Source{
				Aliases: map[string]string{
					"Ang Bak": "Ang Hae",
					"Ang Hai": "Ang Hae",
				},
				PaymentLinks: map[string]map[string]string{
					"Ang Bak": {"1kg": "https://pay.example/bak"},
					"Ang Hai": {"1kg": "https://pay.example/hai"},
				},
				Prices: map[string]map[string]string{
					"Ang Bak": {"1kg": "RM1"},
					"Ang Hai": {"1kg": "RM2"},
				},
			},
			price:      "RM1",
			conflicts:  2,
			detailPart: `alias "Ang Hai" ignored, alias "Ang Bak" already maps to it`,
		},
		{
			name: "Canonical key stored with surrounding whitespace",
			src: &Source{
				Aliases: map[string]string{
					"Ang Bak": "Ang Hae",
				},
				PaymentLinks: map[string]map[string]string{
					" Ang Hae": {"1kg": "https://pay.example/hae"},
					"Ang Bak":  {"1kg": "https://pay.example/bak"},
				},
				Prices: map[string]map[string]string{
					"Ang Hae ": {"1kg": "RM3"},
					"Ang Bak":  {"1kg": "RM1"},
				},
			},
			price:      "RM3",
			conflicts:  2,
			detailPart: `alias "Ang Bak" ignored, canonical entry present`,
		},
		{
			name: "Alias target with surrounding whitespace",
			src: &Source{
				Aliases: map[string]string{
					"Ang Bak": " Ang Hae ",
				},
				PaymentLinks: map[string]map[string]string{
					"Ang Bak": {"1kg": "https://pay.example/bak"},
				},
				Prices: map[string]map[string]string{
					"Ang Bak": {"1kg": "RM1"},
				},
			},
			price: "RM1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, issues, err := Build(tt.src)
			require.NoError(t, err)
			require.Equal(t, 1, c.Len())

			entry, ok := c.Lookup("Ang Hae")
			require.True(t, ok)
			oneKg, ok := entry.Size("1kg")
			require.True(t, ok)
			assert.Equal(t, tt.price, oneKg.Price)

			var conflicts []Issue
			for _, is := range issues {
				if is.Kind == IssueAliasConflict {
					conflicts = append(conflicts, is)
				}
			}
			require.Len(t, conflicts, tt.conflicts)
			for _, is := range conflicts {
				assert.Equal(t, "Ang Hae", is.Product)
				assert.Equal(t, tt.detailPart, is.Detail)
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	tests := []struct {
		name string
		src  *Source
	}{
		{name: "Nil source", src: nil},
		{name: "Empty tables", src: &Source{}},
		{
			name: "Only prices",
			src: &Source{
				Prices: map[string]map[string]string{"A": {"1kg": "RM1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := Build(tt.src)
			assert.ErrorIs(t, err, ErrEmptyCatalog)
			assert.Nil(t, c)
		})
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	src := &Source{
		PaymentLinks: map[string]map[string]string{
			"Gift Box": {DefaultSizeKey: "https://pay.example/a"},
			"Gift-Box": {DefaultSizeKey: "https://pay.example/b"},
		},
	}

	c, issues, err := Build(src)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, IssueDuplicateID, issues[0].Kind)
}

func TestCatalog_SizesSorted(t *testing.T) {
	src := &Source{
		PaymentLinks: map[string]map[string]string{
			"A": {"2kg": "u2", "500g": "u05", "1.5kg": "u15", "1kg": "u1"},
		},
		Prices: map[string]map[string]string{
			"A": {"2kg": "RM2", "500g": "RM0", "1.5kg": "RM15", "1kg": "RM1"},
		},
	}

	c, _, err := Build(src)
	require.NoError(t, err)

	entry, ok := c.Lookup("A")
	require.True(t, ok)

	labels := make([]string, len(entry.Sizes))
	for i, s := range entry.Sizes {
		labels[i] = s.Size
	}
	assert.Equal(t, []string{"1kg", "1.5kg", "2kg", "500g"}, labels)
}

func TestCatalog_LookupReturnsCopies(t *testing.T) {
	c, _, err := Build(Default())
	require.NoError(t, err)

	entry, ok := c.Lookup("Musang King")
	require.True(t, ok)
	entry.Sizes[0].Price = "RM0"

	again, _ := c.Lookup("Musang King")
	assert.Equal(t, "RM85", again.Sizes[0].Price)
}

func TestCatalog_LookupID(t *testing.T) {
	c, _, err := Build(Default())
	require.NoError(t, err)

	entry, ok := c.LookupID("red-prawn-ang-hae")
	require.True(t, ok)
	assert.Equal(t, "Red Prawn/Ang Hae", entry.Name)

	_, ok = c.LookupID("nope")
	assert.False(t, ok)
}

func TestCatalog_ProductsOrdered(t *testing.T) {
	c, _, err := Build(Default())
	require.NoError(t, err)

	products := c.Products()
	for i := 1; i < len(products); i++ {
		assert.True(t, strings.Compare(products[i-1].Name, products[i].Name) < 0)
	}
}

func TestCatalog_SourceRoundTrip(t *testing.T) {
	c, _, err := Build(Default())
	require.NoError(t, err)

	again, issues, err := Build(c.Source())
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, c.Products(), again.Products())
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Musang King", "musang-king"},
		{"Red Prawn/Ang Hae", "red-prawn-ang-hae"},
		{"Lanjiao Yuan/D88 Supreme", "lanjiao-yuan-d88-supreme"},
		{"11 Susu", "11-susu"},
		{"  Mix and Match Gift Box!  ", "mix-and-match-gift-box"},
		{"Durian Crème Brûlée", "durian-creme-brulee"},
		{"Tart & Puff", "tart-and-puff"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slug(tt.name))
		})
	}
}
