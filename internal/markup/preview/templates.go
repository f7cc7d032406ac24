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

package preview

const layouts = `
{{define "address"}}{{with .streetAddress}}{{.}}{{end}}{{with .addressLocality}}, {{.}}{{end}}{{end}}

{{define "LocalBusiness"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .address}}<p>{{template "address" .}}</p>{{end}}
{{with .telephone}}<p>{{.}}</p>{{end}}
{{with .openingHours}}<div class="hours"><p>Hours:</p><ul>
{{range .}}<li>{{.dayOfWeek}}: {{.opens}} - {{.closes}}</li>
{{end}}</ul></div>{{end}}
</div>{{end}}

{{define "Restaurant"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .servesCuisine}}<p>Cuisine: {{.}}</p>{{end}}
{{with .address}}<p>{{template "address" .}}</p>{{end}}
{{with .telephone}}<p>{{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Hotel"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .starRating}}{{with .ratingValue}}<p>{{.}} stars</p>{{end}}{{end}}
{{with .address}}<p>{{template "address" .}}</p>{{end}}
{{with .telephone}}<p>{{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Organization"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .url}}<p>{{.}}</p>{{end}}
{{with .address}}<p>{{template "address" .}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Product"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
{{with .offers}}<p class="price">{{.price}} {{.priceCurrency}}</p>{{end}}
{{with .aggregateRating}}<p>Rating: {{.ratingValue}}/5 ({{.reviewCount}} reviews)</p>{{end}}
</div>{{end}}

{{define "Review"}}<div class="card">
{{with .itemReviewed}}<h3>{{.name}}</h3>{{end}}
{{with .reviewRating}}<p>Rating: {{.ratingValue}}/{{.bestRating}}</p>{{end}}
{{with .author}}<p>By {{.name}}</p>{{end}}
{{with .reviewBody}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Article"}}<div class="card">
{{with .headline}}<h3>{{.}}</h3>{{end}}
{{with .author}}<p>By {{.name}}</p>{{end}}
{{with .datePublished}}<p>Published: {{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "BlogPosting"}}<div class="card">
{{with .headline}}<h3>{{.}}</h3>{{end}}
{{with .author}}<p>{{.name}}</p>{{end}}
{{with .datePublished}}<p>{{.}}</p>{{end}}
{{with .articleBody}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "NewsArticle"}}<div class="card">
{{with .headline}}<h3>{{.}}</h3>{{end}}
{{with .author}}<p>{{.name}}</p>{{end}}
{{with .datePublished}}<p>{{.}}</p>{{end}}
{{with .dateline}}<p>{{.}}</p>{{end}}
{{with .articleBody}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Book"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .author}}<p>{{.name}}</p>{{end}}
{{with .isbn}}<p>ISBN {{.}}</p>{{end}}
{{with .datePublished}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Movie"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .director}}<p>Directed by {{.name}}</p>{{end}}
{{with .actor}}<p>Starring {{range $i, $a := .}}{{if $i}}, {{end}}{{$a.name}}{{end}}</p>{{end}}
{{with .datePublished}}<p>{{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Recipe"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .prepTime}}<p>Prep: {{.}}</p>{{end}}
{{with .cookTime}}<p>Cook: {{.}}</p>{{end}}
{{with .totalTime}}<p>Total: {{.}}</p>{{end}}
{{with .recipeYield}}<p>Yield: {{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
{{with .ingredients}}<div><h4>Ingredients:</h4><ul>
{{range .}}<li>{{.item}}</li>
{{end}}</ul></div>{{end}}
</div>{{end}}

{{define "Event"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .startDate}}<p>Starts: {{.}}</p>{{end}}
{{with .endDate}}<p>Ends: {{.}}</p>{{end}}
{{with .location}}<p>{{.name}}, {{.address}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
{{with .organizer}}<p>Organized by: {{.name}}</p>{{end}}
</div>{{end}}

{{define "JobPosting"}}<div class="card">
{{with .title}}<h3>{{.}}</h3>{{end}}
{{with .hiringOrganization}}<p>{{.name}}</p>{{end}}
{{with .jobLocation}}<p>{{.addressLocality}}, {{.addressRegion}}</p>{{end}}
{{with .employmentType}}<p>{{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "Person"}}<div class="card">
<h3>{{if or .givenName .familyName}}{{.givenName}} {{.familyName}}{{else}}{{.name}}{{end}}</h3>
{{with .jobTitle}}<p>{{.}}</p>{{end}}
{{with .email}}<p>{{.}}</p>{{end}}
{{with .telephone}}<p>{{.}}</p>{{end}}
</div>{{end}}

{{define "FAQPage"}}<div class="card">
<h3>FAQ</h3>
{{range .mainEntity}}<div class="faq"><h4>{{.question}}</h4><p>{{.answer}}</p></div>
{{end}}</div>{{end}}

{{define "WebSite"}}<div class="card">
{{with .name}}<h3>{{.}}</h3>{{end}}
{{with .url}}<p>{{.}}</p>{{end}}
{{with .description}}<p>{{.}}</p>{{end}}
</div>{{end}}
`
