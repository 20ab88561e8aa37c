package server

import (
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/gomseq/config"
	"github.com/fernandosanchezjr/gomseq/sequence"
	"github.com/fernandosanchezjr/gomseq/utils"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultAddress = ":8090"
	CacheTimeout   = 5 * time.Minute
)

// Service serves generated sequences over HTTP. Rendered bodies are
// cached since every period of a given generator is identical.
type Service struct {
	address string
	cache   *ttlcache.Cache
	mtx     sync.RWMutex
	custom  map[string]config.SequenceConfig
}

func NewService(cfg *config.Config) *Service {
	s := &Service{
		address: cfg.ServerAddress,
		cache:   ttlcache.NewCache(),
	}
	if s.address == "" {
		s.address = DefaultAddress
	}
	s.setSequences(cfg.Sequences)
	return s
}

func (s *Service) setSequences(sequences []config.SequenceConfig) {
	custom := make(map[string]config.SequenceConfig, len(sequences))
	for _, sc := range sequences {
		custom[sc.Name] = sc
	}
	s.mtx.Lock()
	s.custom = custom
	s.cache = ttlcache.NewCache()
	s.mtx.Unlock()
}

func (s *Service) reload() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Error("Config reload")
		return
	}
	s.setSequences(cfg.Sequences)
	log.WithField("sequences", len(cfg.Sequences)).Info("Config reloaded")
}

func (s *Service) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/sequence/:m", s.GetSequence)
	router.GET("/sequence/:m/symbols/:bps", s.GetSymbols)
	router.GET("/custom/:name", s.GetCustom)
	return router
}

func (s *Service) Start() error {
	if watcher, err := utils.WatchFile(config.Path(), s.reload); err != nil {
		log.WithError(err).Warn("Config watcher")
	} else {
		defer watcher.Close()
	}
	log.WithField("address", s.address).Info("Serving sequences")
	return http.ListenAndServe(s.address, s.Router())
}

func (s *Service) cached(key string) (string, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if body, found := s.cache.Get(key); found {
		return body.(string), true
	}
	return "", false
}

func (s *Service) store(key, body string) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	s.cache.SetWithTTL(key, body, CacheTimeout)
}

func renderBits(ms *sequence.MSequence) string {
	bs := sequence.NewBSequence()
	sequence.FillBuffer(bs, ms)
	var sb strings.Builder
	sb.Grow(bs.Len() + 1)
	for i := 0; i < bs.Len(); i++ {
		sb.WriteByte('0' + byte(bs.Bit(i)))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func renderSymbols(ms *sequence.MSequence, bits uint32) string {
	var sb strings.Builder
	for i := uint32(0); i < ms.Length(); i += bits {
		sb.WriteString(strconv.FormatUint(uint64(ms.GenerateSymbol(bits)), 16))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func parseLength(params httprouter.Params, name string) (uint32, error) {
	value, err := strconv.ParseUint(params.ByName(name), 0, 32)
	return uint32(value), err
}

func (s *Service) GetSequence(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if body, found := s.cached(r.URL.Path); found {
		_, _ = w.Write([]byte(body))
		return
	}
	m, err := parseLength(params, "m")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ms, err := sequence.NewDefault(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	body := renderBits(ms)
	s.store(r.URL.Path, body)
	_, _ = w.Write([]byte(body))
}

func (s *Service) GetSymbols(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if body, found := s.cached(r.URL.Path); found {
		_, _ = w.Write([]byte(body))
		return
	}
	m, err := parseLength(params, "m")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	bits, err := parseLength(params, "bps")
	if err != nil || bits == 0 || bits > 32 {
		http.Error(w, "bits per symbol not in [1, 32]", http.StatusBadRequest)
		return
	}
	ms, err := sequence.NewDefault(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	body := renderSymbols(ms, bits)
	s.store(r.URL.Path, body)
	_, _ = w.Write([]byte(body))
}

func (s *Service) GetCustom(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if body, found := s.cached(r.URL.Path); found {
		_, _ = w.Write([]byte(body))
		return
	}
	s.mtx.RLock()
	sc, found := s.custom[params.ByName("name")]
	s.mtx.RUnlock()
	if !found {
		http.Error(w, "unknown sequence", http.StatusNotFound)
		return
	}
	ms, err := sc.Build()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body := renderBits(ms)
	s.store(r.URL.Path, body)
	_, _ = w.Write([]byte(body))
}
