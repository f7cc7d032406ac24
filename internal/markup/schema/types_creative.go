/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package schema

const (
	datePattern        = `^\d{4}-\d{2}-\d{2}$`
	datePatternMessage = "Invalid date format. Use YYYY-MM-DD"
)

func authorField() FieldDefinition {
	return group("author", "Author", true,
		text("name", "Author Name", true),
	)
}

func authorRule() *Rule {
	return object("author",
		nonEmpty("name", "Author name is required"),
	)
}

func articleSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Article",
		Description: "For general articles or reports",
		Category:    categoryCreative,
		Fields: []FieldDefinition{
			text("headline", "Headline", true),
			longText("description", "Description", true),
			link("image", "Image URL", true),
			date("datePublished", "Date Published", true),
			date("dateModified", "Date Modified", true),
			authorField(),
			group("publisher", "Publisher", true,
				text("name", "Publisher Name", true),
				group("logo", "Publisher Logo", true,
					link("url", "Logo URL", true),
				),
			),
			group("mainEntityOfPage", "Main Entity of Page", true,
				link("url", "Page URL", true),
			),
		},
		Validator: rules(
			nonEmpty("headline", "Headline is required"),
			nonEmpty("description", "Description is required"),
			leaf("image", URL("Invalid image URL")),
			leaf("datePublished", Pattern(datePattern, datePatternMessage)),
			leaf("dateModified", Pattern(datePattern, datePatternMessage)),
			authorRule(),
			object("publisher",
				nonEmpty("name", "Publisher name is required"),
				object("logo",
					leaf("url", URL("Invalid logo URL")),
				),
			),
			object("mainEntityOfPage",
				leaf("url", URL("Invalid page URL")),
			),
		),
	}
}

func blogPostingSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "BlogPosting",
		Description: "For blog posts or entries",
		Category:    categoryCreative,
		Fields: []FieldDefinition{
			text("headline", "Headline", true),
			authorField(),
			date("datePublished", "Date Published", true),
			link("image", "Image URL", true),
			longText("articleBody", "Article Body", true),
		},
		Validator: rules(
			nonEmpty("headline", "Headline is required"),
			authorRule(),
			nonEmpty("datePublished", "Date published is required"),
			leaf("image", URL("Invalid image URL")),
			nonEmpty("articleBody", "Article body is required"),
		),
	}
}

func newsArticleSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "NewsArticle",
		Description: "For news articles",
		Category:    categoryCreative,
		Fields: []FieldDefinition{
			text("headline", "Headline", true),
			authorField(),
			date("datePublished", "Date Published", true),
			link("image", "Image URL", true),
			longText("articleBody", "Article Body", true),
			text("dateline", "Dateline", false),
		},
		Validator: rules(
			nonEmpty("headline", "Headline is required"),
			authorRule(),
			nonEmpty("datePublished", "Date published is required"),
			leaf("image", URL("Invalid image URL")),
			nonEmpty("articleBody", "Article body is required"),
			optional(leaf("dateline")),
		),
	}
}

func bookSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Book",
		Description: "For written works or publications",
		Category:    categoryCreative,
		Fields: []FieldDefinition{
			text("name", "Book Title", true),
			authorField(),
			text("isbn", "ISBN", true),
			date("datePublished", "Publication Date", true),
			link("image", "Book Cover URL", true),
			longText("description", "Description", true),
		},
		Validator: rules(
			nonEmpty("name", "Book title is required"),
			authorRule(),
			nonEmpty("isbn", "ISBN is required"),
			nonEmpty("datePublished", "Publication date is required"),
			leaf("image", URL("Invalid image URL")),
			nonEmpty("description", "Description is required"),
		),
	}
}

func movieSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Movie",
		Description: "For film or motion picture content",
		Category:    categoryCreative,
		Fields: []FieldDefinition{
			text("name", "Movie Title", true),
			group("director", "Director", true,
				text("name", "Director Name", true),
			),
			list("actor", "Actors", true,
				text("name", "Actor Name", true),
			),
			date("datePublished", "Release Date", true),
			link("image", "Poster Image URL", true),
			longText("description", "Description", true),
		},
		Validator: rules(
			nonEmpty("name", "Movie title is required"),
			object("director",
				nonEmpty("name", "Director name is required"),
			),
			array("actor", 1, "At least one actor is required",
				nonEmpty("name", "Actor name is required"),
			),
			nonEmpty("datePublished", "Release date is required"),
			leaf("image", URL("Invalid image URL")),
			nonEmpty("description", "Description is required"),
		),
	}
}
