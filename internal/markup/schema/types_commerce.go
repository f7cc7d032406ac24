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

func productSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Product",
		Description: "For individual products or services",
		Category:    categoryCommerce,
		Fields: []FieldDefinition{
			text("name", "Product Name", true),
			longText("description", "Description", true),
			link("image", "Image URL", true),
			group("brand", "Brand", true,
				text("name", "Brand Name", true),
			),
			group("offers", "Offer", true,
				number("price", "Price", true),
				text("priceCurrency", "Price Currency", true),
				text("availability", "Availability", true),
			),
			group("aggregateRating", "Aggregate Rating", false,
				number("ratingValue", "Rating Value", true),
				number("reviewCount", "Review Count", true),
			),
		},
		Validator: rules(
			nonEmpty("name", "Product name is required"),
			nonEmpty("description", "Description is required"),
			leaf("image", URL("Invalid image URL")),
			object("brand",
				nonEmpty("name", "Brand name is required"),
			),
			object("offers",
				numeric("price", Positive("Price must be positive")),
				nonEmpty("priceCurrency", "Price currency is required"),
				nonEmpty("availability", "Availability is required"),
			),
			optional(object("aggregateRating",
				numeric("ratingValue",
					Min(0, "Rating must be between 0 and 5"),
					Max(5, "Rating must be between 0 and 5"),
				),
				numeric("reviewCount",
					Integer("Review count must be a positive integer"),
					Positive("Review count must be a positive integer"),
				),
			)),
		),
	}
}

func reviewSchema() *TypeSchema {
	return &TypeSchema{
		Name:        "Review",
		Description: "For critiques or evaluations of items",
		Category:    categoryCommerce,
		Fields: []FieldDefinition{
			group("itemReviewed", "Item Reviewed", true,
				text("name", "Item Name", true),
				text("type", "Item Type", true),
			),
			group("reviewRating", "Review Rating", true,
				number("ratingValue", "Rating Value", true),
				number("bestRating", "Best Rating", true),
				number("worstRating", "Worst Rating", true),
			),
			group("author", "Author", true,
				text("name", "Author Name", true),
			),
			longText("reviewBody", "Review Body", true),
		},
		Validator: rules(
			object("itemReviewed",
				nonEmpty("name", "Item name is required"),
				nonEmpty("type", "Item type is required"),
			),
			object("reviewRating",
				numeric("ratingValue", Min(0, "Rating value must be non-negative")),
				numeric("bestRating", Min(0, "Best rating must be non-negative")),
				numeric("worstRating", Min(0, "Worst rating must be non-negative")),
			),
			object("author",
				nonEmpty("name", "Author name is required"),
			),
			nonEmpty("reviewBody", "Review body is required"),
		),
	}
}
