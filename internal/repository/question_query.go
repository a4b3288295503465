package repository

import (
	"strings"

	"trivia-api/internal/domain"

	"github.com/jmoiron/sqlx"
)

const questionColumns = "id, question, answer, category, difficulty"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern using '\' as the escape character.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// buildQuestionWhere translates a filter into a WHERE clause with '?' bindvars.
// It returns an empty clause when the filter matches every question.
func buildQuestionWhere(filter domain.QuestionFilter) (string, []interface{}, error) {
	var clauses []string
	var args []interface{}

	if categoryID, ok := filter.Category.CategoryID(); ok {
		clauses = append(clauses, "category = ?")
		args = append(args, categoryID)
	}

	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		clauses = append(clauses, `question ILIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(*filter.SearchTerm)+"%")
	}

	// sqlx.In rejects empty slices, and an empty exclusion list excludes nothing anyway.
	if len(filter.ExcludeIDs) > 0 {
		clause, inArgs, err := sqlx.In("id NOT IN (?)", filter.ExcludeIDs)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, clause)
		args = append(args, inArgs...)
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}
