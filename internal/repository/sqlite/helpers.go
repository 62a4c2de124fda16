package sqlite

import (
	"github.com/Masterminds/squirrel"
)

// sqlBuilder is shared across repository implementations. SQLite uses
// question-mark placeholders.
var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
