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

func recipeSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Recipe",
		Description: "For cooking or food preparation instructions",
		Category:    categoryFood,
		Fields: []FieldDefinition{
			text("name", "Recipe Name", true),
			link("image", "Image URL", true),
			longText("description", "Description", true),
			text("prepTime", "Prep Time (e.g., PT15M)", true),
			text("cookTime", "Cook Time (e.g., PT1H)", true),
			text("totalTime", "Total Time (e.g., PT1H15M)", true),
			text("recipeYield", "Recipe Yield (e.g., 4 servings)", true),
			list("ingredients", "Ingredients", true,
				text("item", "Ingredient", true),
			),
			list("instructions", "Instructions", true,
				longText("step", "Step", true),
			),
		},
		Validator: rules(
			nonEmpty("name", "Recipe name is required"),
			leaf("image", URL("Invalid image URL")),
			nonEmpty("description", "Description is required"),
			nonEmpty("prepTime", "Prep time is required"),
			nonEmpty("cookTime", "Cook time is required"),
			nonEmpty("totalTime", "Total time is required"),
			nonEmpty("recipeYield", "Recipe yield is required"),
			array("ingredients", 1, "At least one ingredient is required",
				nonEmpty("item", "Ingredient is required"),
			),
			array("instructions", 1, "At least one instruction step is required",
				nonEmpty("step", "Instruction step is required"),
			),
		),
	}
}

func eventSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Event",
		Description: "For events or happenings",
		Category:    categoryEvents,
		Fields: []FieldDefinition{
			text("name", "Event Name", true),
			dateTime("startDate", "Start Date and Time", true),
			dateTime("endDate", "End Date and Time", true),
			group("location", "Location", true,
				text("name", "Venue Name", true),
				text("address", "Address", true),
			),
			longText("description", "Description", true),
			link("image", "Image URL", false),
			group("organizer", "Organizer", false,
				text("name", "Organizer Name", true),
				link("url", "Organizer Website", false),
			),
		},
		Validator: rules(
			nonEmpty("name", "Event name is required"),
			nonEmpty("startDate", "Start date is required"),
			nonEmpty("endDate", "End date is required"),
			object("location",
				nonEmpty("name", "Venue name is required"),
				nonEmpty("address", "Address is required"),
			),
			nonEmpty("description", "Description is required"),
			optional(leaf("image", URL("Invalid image URL"))),
			optional(object("organizer",
				nonEmpty("name", "Organizer name is required"),
				optional(leaf("url", URL("Invalid organizer website URL"))),
			)),
		),
	}
}

func jobPostingSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "JobPosting",
		Description: "For job listings or openings",
		Category:    categoryEvents,
		Fields: []FieldDefinition{
			text("title", "Job Title", true),
			longText("description", "Job Description", true),
			date("datePosted", "Date Posted", true),
			date("validThrough", "Valid Through", true),
			text("employmentType", "Employment Type", true),
			group("hiringOrganization", "Hiring Organization", true,
				text("name", "Organization Name", true),
			),
			group("jobLocation", "Job Location", true,
				text("addressLocality", "City", true),
				text("addressRegion", "State", true),
				text("addressCountry", "Country", true),
			),
		},
		Validator: rules(
			nonEmpty("title", "Job title is required"),
			nonEmpty("description", "Job description is required"),
			nonEmpty("datePosted", "Date posted is required"),
			nonEmpty("validThrough", "Valid through date is required"),
			nonEmpty("employmentType", "Employment type is required"),
			object("hiringOrganization",
				nonEmpty("name", "Organization name is required"),
			),
			object("jobLocation",
				nonEmpty("addressLocality", "City is required"),
				nonEmpty("addressRegion", "State is required"),
				nonEmpty("addressCountry", "Country is required"),
			),
		),
	}
}

func personSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Person",
		Description: "For information about individuals",
		Category:    categoryPeople,
		Fields: []FieldDefinition{
			text("name", "Full Name", true),
			text("givenName", "Given Name", false),
			text("familyName", "Family Name", false),
			date("birthDate", "Birth Date", false),
			link("image", "Image URL", false),
			text("jobTitle", "Job Title", false),
			text("email", "Email", false),
			text("telephone", "Telephone", false),
		},
		Validator: rules(
			nonEmpty("name", "Full name is required"),
			optional(leaf("givenName")),
			optional(leaf("familyName")),
			optional(leaf("birthDate")),
			optional(leaf("image", URL("Invalid image URL"))),
			optional(leaf("jobTitle")),
			optional(leaf("email", Email("Invalid email"))),
			optional(leaf("telephone")),
		),
	}
}

func faqPageSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "FAQPage",
		Description: "For frequently asked questions pages",
		Category:    categoryWeb,
		Fields: []FieldDefinition{
			list("mainEntity", "FAQ Items", true,
				text("question", "Question", true),
				longText("answer", "Answer", true),
			),
		},
		Validator: rules(
			array("mainEntity", 1, "At least one FAQ item is required",
				nonEmpty("question", "Question is required"),
				nonEmpty("answer", "Answer is required"),
			),
		),
	}
}

func webSiteSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "WebSite",
		Description: "For overall website information",
		Category:    categoryWeb,
		Fields: []FieldDefinition{
			text("name", "Website Name", true),
			link("url", "URL", true),
			longText("description", "Description", true),
		},
		Validator: rules(
			nonEmpty("name", "Website name is required"),
			leaf("url", URL("Invalid URL")),
			nonEmpty("description", "Description is required"),
		),
	}
}
