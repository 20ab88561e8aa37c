package search

import (
	"encoding/binary"
	"errors"
	"go.etcd.io/bbolt"
)

var polynomialsBucket = []byte("polynomials")

var LengthNotFound = errors.New("register length not found")

// Store caches search results on disk so that repeated searches for the
// same register length are served without recomputation.
type Store struct {
	db *bbolt.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func lengthKey(m uint32) []byte {
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], m)
	return key[:]
}

func (s *Store) Put(m uint32, polynomials []uint32) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(polynomialsBucket)
		if err != nil {
			return err
		}
		value := make([]byte, 4*len(polynomials))
		for i, g := range polynomials {
			binary.BigEndian.PutUint32(value[i*4:], g)
		}
		return bucket.Put(lengthKey(m), value)
	})
}

func (s *Store) Get(m uint32) ([]uint32, error) {
	var polynomials []uint32
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(polynomialsBucket)
		if bucket == nil {
			return LengthNotFound
		}
		value := bucket.Get(lengthKey(m))
		if value == nil {
			return LengthNotFound
		}
		polynomials = make([]uint32, len(value)/4)
		for i := range polynomials {
			polynomials[i] = binary.BigEndian.Uint32(value[i*4:])
		}
		return nil
	})
	return polynomials, err
}

// Find returns the primitive polynomials of degree m, searching and
// caching them if the store has no entry yet.
func (s *Store) Find(m uint32, limit int) ([]uint32, error) {
	if polynomials, err := s.Get(m); err == nil {
		return polynomials, nil
	} else if err != LengthNotFound {
		return nil, err
	}
	polynomials, err := Primitive(m, limit)
	if err != nil {
		return nil, err
	}
	if err := s.Put(m, polynomials); err != nil {
		return nil, err
	}
	return polynomials, nil
}
