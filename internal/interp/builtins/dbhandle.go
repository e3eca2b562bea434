package builtins

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tofey-ar/nawa/internal/interp/runtime"
)

// registerDBHandle wires the hosted database handle facade (spec.md
// §4.G) on github.com/mattn/go-sqlite3 via database/sql, adopted from
// the dphaener-conduit example repo's SQL driver stack.
func registerDBHandle(dst map[string]*runtime.Builtin) {
	register(dst, []entry{
		{"افتح_قاعدة", CategoryDBHandle, biOpenDatabase},
	})
}

// dbHandle is the opaque Object افتح_قاعدة returns; تنفيذ (execute) and
// استعلام (query) are exposed through property-access dispatch, matching
// the evaluator's HostObject contract (spec.md §4.F).
type dbHandle struct {
	db *sql.DB
}

func (h *dbHandle) Type() string   { return "DBHANDLE" }
func (h *dbHandle) String() string { return "<قاعدة_بيانات>" }

func (h *dbHandle) Property(name string) (runtime.Value, error) {
	switch name {
	case "تنفيذ":
		return &runtime.Builtin{Name: "تنفيذ", Fn: h.execute}, nil
	case "استعلام":
		return &runtime.Builtin{Name: "استعلام", Fn: h.query}, nil
	default:
		return runtime.Null{}, nil
	}
}

func biOpenDatabase(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("افتح_قاعدة", 1, len(args))
	}
	path, err := asText("افتح_قاعدة", args[0])
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", string(path))
	if err != nil {
		return nil, fmt.Errorf("افتح_قاعدة: %w", err)
	}
	return &dbHandle{db: db}, nil
}

func (h *dbHandle) execute(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("تنفيذ", 1, len(args))
	}
	stmt, err := asText("تنفيذ", args[0])
	if err != nil {
		return nil, err
	}
	result, err := h.db.Exec(string(stmt))
	if err != nil {
		return nil, fmt.Errorf("تنفيذ: %w", err)
	}
	affected, _ := result.RowsAffected()
	return runtime.IntNumber(affected), nil
}

// query returns a List of Objects, one per row, keyed by column name.
func (h *dbHandle) query(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errWrongArity("استعلام", 1, len(args))
	}
	stmt, err := asText("استعلام", args[0])
	if err != nil {
		return nil, err
	}
	rows, err := h.db.Query(string(stmt))
	if err != nil {
		return nil, fmt.Errorf("استعلام: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("استعلام: %w", err)
	}

	var results []runtime.Value
	for rows.Next() {
		scanTargets := make([]any, len(cols))
		values := make([]any, len(cols))
		for i := range scanTargets {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("استعلام: %w", err)
		}
		row := runtime.NewObject()
		for i, col := range cols {
			row.Set(col, sqlValueToNawa(values[i]))
		}
		results = append(results, row)
	}
	return runtime.NewList(results), nil
}

func sqlValueToNawa(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.Null{}
	case int64:
		return runtime.IntNumber(val)
	case float64:
		return runtime.FloatNumber(val)
	case string:
		return runtime.Text(val)
	case []byte:
		return runtime.Text(val)
	default:
		return runtime.Text(fmt.Sprintf("%v", val))
	}
}
