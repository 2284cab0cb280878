package kb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// Relevance weights for keyword search.
const (
	titleWeight    = 10
	tagWeight      = 5
	categoryWeight = 4
	contentWeight  = 3
)

type scored struct {
	article    *Article
	score      int
	commonTags []string
}

// searchArticles scores every article against the query and returns matches
// sorted by descending relevance, capped at limit. An optional category
// filter must match exactly (case-insensitive).
func searchArticles(query, category string, limit int) []scored {
	q := strings.ToLower(query)
	var results []scored
	for i := range articles {
		a := &articles[i]
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		score := 0
		if strings.Contains(strings.ToLower(a.Title), q) {
			score += titleWeight
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += tagWeight
			}
		}
		if strings.Contains(strings.ToLower(a.Content), q) {
			score += contentWeight
		}
		if strings.Contains(strings.ToLower(a.Category), q) {
			score += categoryWeight
		}
		if score > 0 {
			results = append(results, scored{article: a, score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// SearchHit is one row in a search result set.
type SearchHit struct {
	ArticleID      string   `json:"article_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	RelevanceScore int      `json:"relevance_score"`
	Tags           []string `json:"tags"`
	Views          int      `json:"views"`
	HelpfulCount   int      `json:"helpful_count"`
}

// SearchResult is the payload of search_solutions.
type SearchResult struct {
	Query      string      `json:"query"`
	Category   string      `json:"category,omitempty"`
	Results    []SearchHit `json:"results"`
	TotalCount int         `json:"total_count"`
}

// Search finds articles matching the query, optionally scoped to a category.
func Search(query, category string, limit int) SearchResult {
	if limit <= 0 {
		limit = 10
	}
	hits := searchArticles(query, category, limit)
	out := SearchResult{Query: query, Category: category, Results: []SearchHit{}, TotalCount: len(hits)}
	for _, h := range hits {
		out.Results = append(out.Results, SearchHit{
			ArticleID:      h.article.ArticleID,
			Title:          h.article.Title,
			Category:       h.article.Category,
			RelevanceScore: h.score,
			Tags:           h.article.Tags,
			Views:          h.article.Views,
			HelpfulCount:   h.article.HelpfulCount,
		})
	}
	return out
}

func findArticle(articleID string) *Article {
	for i := range articles {
		if articles[i].ArticleID == articleID {
			return &articles[i]
		}
	}
	return nil
}

// GetArticle returns the full article content by ID.
func GetArticle(articleID string) any {
	a := findArticle(articleID)
	if a == nil {
		return domain.NotFound(
			fmt.Sprintf("Article %s not found", articleID),
			"The knowledge base does not include that article_id.",
			[]string{
				"Call search_solutions with keywords related to the issue.",
				"Use find_related_articles starting from a known article to explore similar topics.",
			},
			"search_solutions", "find_related_articles",
		).WithContext("article_id", articleID)
	}
	return *a
}

// Related weights: shared tags count triple, same category adds a flat bonus.
const (
	sharedTagWeight  = 3
	sameCategoryBump = 5
)

// RelatedHit is one row in a related-articles result.
type RelatedHit struct {
	ArticleID      string   `json:"article_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	RelevanceScore int      `json:"relevance_score"`
	CommonTags     []string `json:"common_tags"`
}

// RelatedResult is the payload of find_related_articles.
type RelatedResult struct {
	ArticleID       string       `json:"article_id,omitempty"`
	Topic           string       `json:"topic,omitempty"`
	RelatedArticles []RelatedHit `json:"related_articles"`
	TotalFound      int          `json:"total_found"`
}

// FindRelated recommends articles near a reference article (by tag and
// category overlap) or near a free-text topic. An unknown reference article
// is an error; an empty result for a known article is not.
func FindRelated(articleID, topic string, limit int) any {
	if limit <= 0 {
		limit = 5
	}
	var hits []scored
	switch {
	case articleID != "":
		ref := findArticle(articleID)
		if ref == nil {
			return domain.NotFound(
				fmt.Sprintf("Article %s not found", articleID),
				"Cannot recommend related content because the source article does not exist.",
				[]string{
					"Run search_solutions using the article topic to find existing entries.",
					"Confirm the article_id format (e.g., KB-001).",
				},
				"search_solutions",
			).WithContext("article_id", articleID)
		}
		refTags := map[string]bool{}
		for _, t := range ref.Tags {
			refTags[t] = true
		}
		for i := range articles {
			a := &articles[i]
			if a.ArticleID == articleID {
				continue
			}
			var common []string
			for _, t := range a.Tags {
				if refTags[t] {
					common = append(common, t)
				}
			}
			score := len(common) * sharedTagWeight
			if a.Category == ref.Category {
				score += sameCategoryBump
			}
			if score > 0 {
				sort.Strings(common)
				hits = append(hits, scored{article: a, score: score, commonTags: common})
			}
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
		if len(hits) > limit {
			hits = hits[:limit]
		}
	case topic != "":
		hits = searchArticles(topic, "", limit)
	}

	out := RelatedResult{ArticleID: articleID, Topic: topic, RelatedArticles: []RelatedHit{}, TotalFound: len(hits)}
	for _, h := range hits {
		tags := h.commonTags
		if tags == nil {
			tags = []string{}
		}
		out.RelatedArticles = append(out.RelatedArticles, RelatedHit{
			ArticleID:      h.article.ArticleID,
			Title:          h.article.Title,
			Category:       h.article.Category,
			RelevanceScore: h.score,
			CommonTags:     tags,
		})
	}
	return out
}

// Common-fix weights.
const (
	productWeight      = 10
	issueInTitleWeight = 8
	issueInTagWeight   = 5
	maxCommonFixes     = 10
)

// FixHit is one row in a common-fixes result.
type FixHit struct {
	ArticleID      string   `json:"article_id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	RelevanceScore int      `json:"relevance_score"`
	HelpfulCount   int      `json:"helpful_count"`
	Tags           []string `json:"tags"`
}

// FixesResult is the payload of get_common_fixes.
type FixesResult struct {
	Product     string   `json:"product,omitempty"`
	IssueType   string   `json:"issue_type,omitempty"`
	CommonFixes []FixHit `json:"common_fixes"`
	TotalFound  int      `json:"total_found"`
}

// CommonFixes ranks articles against a product name and/or an issue type,
// returning the top matches.
func CommonFixes(product, issueType string) FixesResult {
	var hits []scored
	for i := range articles {
		a := &articles[i]
		score := 0
		if product != "" {
			for _, p := range a.RelatedProducts {
				if strings.Contains(strings.ToLower(p), strings.ToLower(product)) {
					score += productWeight
					break
				}
			}
		}
		if issueType != "" {
			if strings.Contains(strings.ToLower(a.Title), strings.ToLower(issueType)) {
				score += issueInTitleWeight
			}
			for _, tag := range a.Tags {
				if strings.Contains(strings.ToLower(tag), strings.ToLower(issueType)) {
					score += issueInTagWeight
				}
			}
		}
		if score > 0 {
			hits = append(hits, scored{article: a, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxCommonFixes {
		hits = hits[:maxCommonFixes]
	}

	out := FixesResult{Product: product, IssueType: issueType, CommonFixes: []FixHit{}, TotalFound: len(hits)}
	for _, h := range hits {
		out.CommonFixes = append(out.CommonFixes, FixHit{
			ArticleID:      h.article.ArticleID,
			Title:          h.article.Title,
			Category:       h.article.Category,
			RelevanceScore: h.score,
			HelpfulCount:   h.article.HelpfulCount,
			Tags:           h.article.Tags,
		})
	}
	return out
}
