package crudgen

// RouterTemplate renders app/routers/<resource>.go. It relies on the
// helpers in app/routers/routers.go written by create-project.
const RouterTemplate = `// Code generated by scaffold generate-crud. DO NOT EDIT.

package routers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"{{.ModulePath}}/app/database"
	"{{.ModulePath}}/app/models"
	"{{.ModulePath}}/app/schemas"
)
{{- $e := .Naming.EntityName}}
{{- $p := .Naming.EntityPlural}}

const (
	select{{$e}}SQL = {{quote .SelectSQL}}
	list{{$p}}SQL   = {{quote .ListSQL}}
	insert{{$e}}SQL = {{quote .InsertSQL}}
	update{{$e}}SQL = {{quote .UpdateSQL}}
	delete{{$e}}SQL = {{quote .DeleteSQL}}
)

// Register{{$e}}Routes wires the {{.Naming.TableName}} endpoints onto mux.
func Register{{$e}}Routes(mux *http.ServeMux, db *database.Session) {
	mux.HandleFunc("GET {{.Naming.HTTPBasePath}}", list{{$p}}(db))
	mux.HandleFunc("GET {{.Naming.HTTPBasePath}}/{id}", get{{$e}}(db))
	mux.HandleFunc("POST {{.Naming.HTTPBasePath}}", create{{$e}}(db))
	mux.HandleFunc("PUT {{.Naming.HTTPBasePath}}/{id}", update{{$e}}(db))
	mux.HandleFunc("DELETE {{.Naming.HTTPBasePath}}/{id}", delete{{$e}}(db))
}

func scan{{$e}}(row interface{ Scan(dest ...any) error }) (models.{{$e}}, error) {
	var m models.{{$e}}
	err := row.Scan(&m.ID,{{range .Fields}} &m.{{.GoName}},{{end}} &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func to{{$e}}Response(m models.{{$e}}) schemas.{{$e}} {
	return schemas.{{$e}}{
		ID: m.ID,
		{{$e}}Base: schemas.{{$e}}Base{
{{- range .Fields}}
			{{.GoName}}: m.{{.GoName}},
{{- end}}
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func list{{$p}}(db *database.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := queryInt(r, "skip", 0)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		limit, err := queryInt(r, "limit", 100)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		conn, err := db.Conn(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		defer conn.Close()

		rows, err := conn.QueryContext(r.Context(), list{{$p}}SQL, limit, skip)
		if err != nil {
			internalError(w, err)
			return
		}
		defer rows.Close()

		out := []schemas.{{$e}}{}
		for rows.Next() {
			m, err := scan{{$e}}(rows)
			if err != nil {
				internalError(w, err)
				return
			}
			out = append(out, to{{$e}}Response(m))
		}
		if err := rows.Err(); err != nil {
			internalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func get{{$e}}(db *database.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		conn, err := db.Conn(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		defer conn.Close()

		m, err := scan{{$e}}(conn.QueryRowContext(r.Context(), select{{$e}}SQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			writeDetail(w, http.StatusNotFound, "{{$e}} not found")
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, to{{$e}}Response(m))
	}
}

func create{{$e}}(db *database.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in schemas.{{$e}}Create
		if err := decodeBody(r, &in); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		conn, err := db.Conn(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		defer conn.Close()

		m, err := scan{{$e}}(conn.QueryRowContext(r.Context(), insert{{$e}}SQL{{range .Fields}}, in.{{.GoName}}{{end}}))
		if err != nil {
			internalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, to{{$e}}Response(m))
	}
}

func update{{$e}}(db *database.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		var in schemas.{{$e}}Update
		if err := decodeBody(r, &in); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		conn, err := db.Conn(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		defer conn.Close()

		tx, err := conn.BeginTx(r.Context(), nil)
		if err != nil {
			internalError(w, err)
			return
		}
		defer tx.Rollback()

		m, err := scan{{$e}}(tx.QueryRowContext(r.Context(), select{{$e}}SQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			writeDetail(w, http.StatusNotFound, "{{$e}} not found")
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}

		changed := false
{{- range .Fields}}
		if in.{{.GoName}} != nil {
			m.{{.GoName}} = {{if not .Nullable}}*{{end}}in.{{.GoName}}
			changed = true
		}
{{- end}}
		if !changed {
			writeJSON(w, http.StatusOK, to{{$e}}Response(m))
			return
		}

		m, err = scan{{$e}}(tx.QueryRowContext(r.Context(), update{{$e}}SQL,{{range .Fields}} m.{{.GoName}},{{end}} time.Now().UTC(), id))
		if err != nil {
			internalError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			internalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, to{{$e}}Response(m))
	}
}

func delete{{$e}}(db *database.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		conn, err := db.Conn(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		defer conn.Close()

		res, err := conn.ExecContext(r.Context(), delete{{$e}}SQL, id)
		if err != nil {
			internalError(w, err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			internalError(w, err)
			return
		}
		if n == 0 {
			writeDetail(w, http.StatusNotFound, "{{$e}} not found")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
`
