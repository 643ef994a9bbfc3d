package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// jobInserter returns an insert-only River client. Outside a transaction it
// is bound to the pool; inside one it has no pool and inserts through
// InsertTx only.
func (p *PgSQL) jobInserter() (*river.Client[*sql.Tx], error) {
	db, _ := p.DB.(*sql.DB)

	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river client: %w", err)
	}

	return client, nil
}

// AddJob inserts a River job. Inside a transaction the job only becomes
// visible on commit. It reports false when River skipped a duplicate unique
// job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	client, err := p.jobInserter()
	if err != nil {
		return false, err
	}

	var res *rivertype.JobInsertResult
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
