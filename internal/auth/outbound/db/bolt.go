package db

import (
	"context"
	"encoding/json"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"
)

var (
	bucketTOTPEnrollments = []byte("auth_totp_enrollments")
	bucketEmailChallenges = []byte("auth_email_challenges")
)

// Bolt persists second-factor state in a bbolt database, keyed by username.
type Bolt struct {
	db  *bbolt.DB
	ins instrument.Instrumentation
}

func NewBolt(db *bbolt.DB, ins instrument.Instrumentation) *Bolt {
	return &Bolt{db: db, ins: ins}
}

func (b *Bolt) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return b.ins.Tracer("auth.outbound.db").Start(ctx, name)
}

// SaveTOTPEnrollment stores or replaces the enrollment for its username.
func (b *Bolt) SaveTOTPEnrollment(ctx context.Context, e entity.TOTPEnrollment) error {
	_, span := b.startSpan(ctx, "SaveTOTPEnrollment")
	defer span.End()

	return b.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists(bucketTOTPEnrollments)
		if err != nil {
			return err
		}

		data, err := json.Marshal(e)
		if err != nil {
			return err
		}

		return bkt.Put([]byte(e.Username), data)
	})
}

// GetTOTPEnrollment returns the enrollment for username or goerror.ErrNotFound.
func (b *Bolt) GetTOTPEnrollment(ctx context.Context, username string) (*entity.TOTPEnrollment, error) {
	_, span := b.startSpan(ctx, "GetTOTPEnrollment")
	defer span.End()

	var e entity.TOTPEnrollment
	err := b.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(bucketTOTPEnrollments)
		if bkt == nil {
			return goerror.ErrNotFound
		}

		data := bkt.Get([]byte(username))
		if data == nil {
			return goerror.ErrNotFound
		}

		return json.Unmarshal(data, &e)
	})
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// SaveEmailChallenge stores or replaces the pending challenge for its username.
func (b *Bolt) SaveEmailChallenge(ctx context.Context, c entity.EmailChallenge) error {
	_, span := b.startSpan(ctx, "SaveEmailChallenge")
	defer span.End()

	return b.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists(bucketEmailChallenges)
		if err != nil {
			return err
		}

		data, err := json.Marshal(c)
		if err != nil {
			return err
		}

		return bkt.Put([]byte(c.Username), data)
	})
}

// GetEmailChallenge returns the pending challenge for username or goerror.ErrNotFound.
func (b *Bolt) GetEmailChallenge(ctx context.Context, username string) (*entity.EmailChallenge, error) {
	_, span := b.startSpan(ctx, "GetEmailChallenge")
	defer span.End()

	var c entity.EmailChallenge
	err := b.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(bucketEmailChallenges)
		if bkt == nil {
			return goerror.ErrNotFound
		}

		data := bkt.Get([]byte(username))
		if data == nil {
			return goerror.ErrNotFound
		}

		return json.Unmarshal(data, &c)
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// DeleteEmailChallenge removes the pending challenge so a code is single use.
func (b *Bolt) DeleteEmailChallenge(ctx context.Context, username string) error {
	_, span := b.startSpan(ctx, "DeleteEmailChallenge")
	defer span.End()

	return b.db.Update(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(bucketEmailChallenges)
		if bkt == nil {
			return nil
		}

		return bkt.Delete([]byte(username))
	})
}
