// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import "github.com/pdiddy/paperkit/pkg/types"

// builtinOrder fixes the listing order of the builtin templates.
var builtinOrder = []string{"agu", "nature", "science", "pnas", "default"}

// builtinTemplates holds the journal house styles. Each entry is a complete
// profile: selecting a template replaces every field of the defaults.
var builtinTemplates = map[string]types.Profile{
	"agu": {
		Name:         "American Geophysical Union (AGU)",
		Font:         "Times New Roman",
		FontSize:     12,
		TitleSize:    16,
		Heading1Size: 14,
		Heading2Size: 12,
		Heading3Size: 12,
		LineSpacing:  2.0,
		Margins:      1.0,
		Language:     "en-US",
		PaperSize:    "letter",
		CSLStyle:     "https://www.zotero.org/styles/american-geophysical-union",
		CitationType: "author-year",
		Sections: []string{
			"Abstract",
			"Introduction",
			"Methods",
			"Results",
			"Discussion",
			"Conclusions",
			"Data Availability Statement",
			"Acknowledgments",
			"References",
		},
	},

	"nature": {
		Name:         "Nature",
		Font:         "Arial",
		FontSize:     12,
		TitleSize:    14,
		Heading1Size: 12,
		Heading2Size: 12,
		Heading3Size: 11,
		LineSpacing:  2.0,
		Margins:      1.0,
		Language:     "en-GB",
		PaperSize:    "a4",
		CSLStyle:     "https://www.zotero.org/styles/nature",
		CitationType: "numbered",
		Sections: []string{
			"Abstract",
			"Introduction",
			"Results",
			"Discussion",
			"Methods",
			"Data availability",
			"Code availability",
			"References",
			"Acknowledgements",
			"Author contributions",
			"Competing interests",
		},
	},

	"science": {
		Name:         "Science",
		Font:         "Times New Roman",
		FontSize:     12,
		TitleSize:    14,
		Heading1Size: 12,
		Heading2Size: 12,
		Heading3Size: 11,
		LineSpacing:  2.0,
		Margins:      1.0,
		Language:     "en-US",
		PaperSize:    "letter",
		CSLStyle:     "https://www.zotero.org/styles/science",
		CitationType: "numbered",
		Sections: []string{
			"Abstract",
			"Introduction",
			"Results",
			"Discussion",
			"Materials and Methods",
			"References and Notes",
			"Acknowledgments",
			"Supplementary Materials",
		},
	},

	"pnas": {
		Name:         "Proceedings of the National Academy of Sciences (PNAS)",
		Font:         "Times New Roman",
		FontSize:     11,
		TitleSize:    13,
		Heading1Size: 11,
		Heading2Size: 11,
		Heading3Size: 11,
		LineSpacing:  2.0,
		Margins:      1.0,
		Language:     "en-US",
		PaperSize:    "letter",
		CSLStyle:     "https://www.zotero.org/styles/pnas",
		CitationType: "numbered",
		Sections: []string{
			"Abstract",
			"Significance Statement",
			"Introduction",
			"Results",
			"Discussion",
			"Materials and Methods",
			"Acknowledgments",
			"References",
		},
	},

	"default": {
		Name:         "Default (General Academic)",
		Font:         "Arial",
		FontSize:     12,
		TitleSize:    16,
		Heading1Size: 14,
		Heading2Size: 12,
		Heading3Size: 12,
		LineSpacing:  1.5,
		Margins:      1.0,
		Language:     "en-GB",
		PaperSize:    "a4",
		CSLStyle:     "https://www.zotero.org/styles/apa",
		CitationType: "author-year",
		Sections: []string{
			"Abstract",
			"Introduction",
			"Methods",
			"Results",
			"Discussion",
			"Conclusions",
			"Acknowledgements",
			"Data Availability",
			"Author Contributions",
			"Competing Interests",
			"References",
		},
	},
}
