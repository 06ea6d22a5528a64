package store

import (
	"context"
	"fmt"

	"github.com/IanFindlay/nc-news/utils"
)

// CheckExists verifies that some row in table has column equal to value,
// rejecting with a 404 carrying notFoundMsg otherwise. It is the precondition
// gate that tells "article has no comments" apart from "article does not
// exist". Table and column names always come from call sites, never from
// request input.
func (s *Store) CheckExists(ctx context.Context, table, column string, value interface{}, notFoundMsg string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.NotFound(notFoundMsg)
	}
	return nil
}
