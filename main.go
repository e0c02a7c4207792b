// guidedlda fits a seeded LDA model on an LDA-C corpus.
// Usage:
/*
  guidedlda -corpus=nyt.ldac -vocab=nyt.tokens -seeds=seeds.txt \
    -k=5 -iter=100 -seed_confidence=0.15 -output=nyt
*/
// Flag defaults can be overridden through GUIDEDLDA_* environment
// variables, which are also read from a .env file in the working directory.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"

	log "github.com/golang/glog"
	"github.com/joho/godotenv"

	"github.com/bobonovski/guidedlda/corpus"
	"github.com/bobonovski/guidedlda/model"
)

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		log.Warningf("ignoring %s=%q: %v, using default %d", key, v, err, def)
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
		log.Warningf("ignoring %s=%q: %v, using default %v", key, v, err, def)
	}
	return def
}

func main() {
	_ = godotenv.Load(".env")

	var (
		input          = flag.String("corpus", envString("GUIDEDLDA_CORPUS", ""), "LDA-C training file")
		offset         = flag.Int("offset", envInt("GUIDEDLDA_OFFSET", 0), "first term id in the training file")
		vocabFile      = flag.String("vocab", envString("GUIDEDLDA_VOCAB", ""), "whitespace-delimited vocabulary file")
		seedFile       = flag.String("seeds", envString("GUIDEDLDA_SEEDS", ""), "seed words, one topic per line")
		seedConfidence = flag.Float64("seed_confidence", envFloat("GUIDEDLDA_SEED_CONFIDENCE", 0.15), "seed confidence in [0, 1]")
		topicNum       = flag.Int("k", envInt("GUIDEDLDA_TOPICS", 20), "number of topics")
		alpha          = flag.Float64("alpha", envFloat("GUIDEDLDA_ALPHA", 0.1), "document-topic mixture hyperparameter")
		eta            = flag.Float64("eta", envFloat("GUIDEDLDA_ETA", 0.01), "topic-word mixture hyperparameter")
		iteration      = flag.Int("iter", envInt("GUIDEDLDA_ITER", 100), "number of iteration")
		randomState    = flag.Int64("random_state", int64(envInt("GUIDEDLDA_RANDOM_STATE", 7)), "random seed")
		refresh        = flag.Int("refresh", envInt("GUIDEDLDA_REFRESH", 10), "iterations between progress logs")
		output         = flag.String("output", envString("GUIDEDLDA_OUTPUT", "model"), "output file prefix")
	)
	flag.Parse()
	defer log.Flush()

	if *offset < 0 {
		log.Exitf("offset = %d, must not be negative", *offset)
	}

	// read training data
	data := &corpus.Corpus{}
	if err := data.LoadFile(*input, uint32(*offset)); err != nil {
		log.Exitf("cannot load corpus %s: %v", *input, err)
	}
	if data.DocNum == 0 || data.VocabSize == 0 {
		log.Exitf("corpus %s contains no term", *input)
	}

	vocabSize := data.VocabSize
	var seeds map[int]int
	if *vocabFile != "" {
		vocab := corpus.NewVocabulary()
		if err := vocab.LoadFile(*vocabFile); err != nil {
			log.Exitf("cannot load vocabulary %s: %v", *vocabFile, err)
		}
		if uint32(vocab.Len()) < vocabSize {
			log.Exitf("vocabulary has %d tokens, corpus uses %d", vocab.Len(), vocabSize)
		}
		vocabSize = uint32(vocab.Len())

		if *seedFile != "" {
			lists, err := corpus.LoadSeedListsFile(*seedFile)
			if err != nil {
				log.Exitf("cannot load seeds %s: %v", *seedFile, err)
			}
			if seeds, err = corpus.SeedTopics(vocab, lists); err != nil {
				log.Exitf("bad seeds: %v", err)
			}
			log.Infof("seeded %d terms over %d topics", len(seeds), len(lists))
		}
	} else if *seedFile != "" {
		log.Exitf("-seeds requires -vocab")
	}

	// init model
	m, err := model.New(model.Config{
		Topics:      *topicNum,
		Alpha:       *alpha,
		Eta:         *eta,
		Iterations:  *iteration,
		RandomState: *randomState,
		Refresh:     *refresh,
	})
	if err != nil {
		log.Exitf("bad model configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := m.Fit(ctx, data.Matrix(vocabSize), seeds, *seedConfidence); err != nil {
		if ctx.Err() == nil {
			log.Exitf("fit failed: %v", err)
		}
		log.Warningf("early terminated by signal, saving the current state")
	}

	for suffix, save := range map[string]func(string) error{
		".theta": m.SaveTheta,
		".phi":   m.SavePhi,
		".wt":    m.SaveWordTopic,
	} {
		if err := save(*output + suffix); err != nil {
			log.Errorf("cannot save %s%s: %v", *output, suffix, err)
		}
	}
	log.Infof("saved model to %s.{theta,phi,wt}, likelihood %f", *output, m.LogLikelihood())
}
