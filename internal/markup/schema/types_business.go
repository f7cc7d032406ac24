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

func postalAddressField() FieldDefinition {
	return group("address", "Address", true,
		text("streetAddress", "Street Address", true),
		text("addressLocality", "City", true),
		text("addressRegion", "State", true),
		text("postalCode", "Postal Code", true),
		text("addressCountry", "Country", true),
	)
}

func postalAddressRule() *Rule {
	return object("address",
		nonEmpty("streetAddress", "Street address is required"),
		nonEmpty("addressLocality", "City is required"),
		nonEmpty("addressRegion", "State is required"),
		nonEmpty("postalCode", "Postal code is required"),
		nonEmpty("addressCountry", "Country is required"),
	)
}

func localBusinessSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "LocalBusiness",
		Description: "For businesses with a physical location",
		Category:    categoryBusiness,
		Fields: []FieldDefinition{
			text("name", "Business Name", true),
			postalAddressField(),
			text("telephone", "Telephone", false),
			list("openingHours", "Opening Hours", false,
				text("dayOfWeek", "Day of Week", true),
				text("opens", "Opens", true),
				text("closes", "Closes", true),
			),
		},
		Validator: rules(
			nonEmpty("name", "Business name is required"),
			postalAddressRule(),
			optional(leaf("telephone")),
			optional(array("openingHours", 0, "",
				nonEmpty("dayOfWeek", "Day of week is required"),
				nonEmpty("opens", "Opening time is required"),
				nonEmpty("closes", "Closing time is required"),
			)),
		),
	}
}

func restaurantSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Restaurant",
		Description: "For food service establishments",
		Category:    categoryBusiness,
		Fields: []FieldDefinition{
			text("name", "Restaurant Name", true),
			longText("description", "Description", true),
			postalAddressField(),
			text("telephone", "Telephone", true),
			text("servesCuisine", "Cuisine", true),
		},
		Validator: rules(
			nonEmpty("name", "Restaurant name is required"),
			nonEmpty("description", "Description is required"),
			postalAddressRule(),
			nonEmpty("telephone", "Telephone is required"),
			nonEmpty("servesCuisine", "Cuisine is required"),
		),
	}
}

func hotelSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Hotel",
		Description: "For lodging businesses",
		Category:    categoryBusiness,
		Fields: []FieldDefinition{
			text("name", "Hotel Name", true),
			longText("description", "Description", true),
			postalAddressField(),
			text("telephone", "Telephone", true),
			group("starRating", "Star Rating", true,
				number("ratingValue", "Rating Value", true),
			),
		},
		Validator: rules(
			nonEmpty("name", "Hotel name is required"),
			nonEmpty("description", "Description is required"),
			postalAddressRule(),
			nonEmpty("telephone", "Telephone is required"),
			object("starRating",
				numeric("ratingValue",
					Min(1, "Rating must be between 1 and 5"),
					Max(5, "Rating must be between 1 and 5"),
				),
			),
		),
	}
}

func organizationSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Organization",
		Description: "For details about companies or institutions",
		Category:    categoryBusiness,
		Fields: []FieldDefinition{
			text("name", "Organization Name", true),
			longText("description", "Description", true),
			link("url", "Website URL", true),
			link("logo", "Logo URL", true),
			postalAddressField(),
		},
		Validator: rules(
			nonEmpty("name", "Organization name is required"),
			nonEmpty("description", "Description is required"),
			leaf("url", URL("Invalid website URL")),
			leaf("logo", URL("Invalid logo URL")),
			postalAddressRule(),
		),
	}
}
