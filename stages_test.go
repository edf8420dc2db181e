package main

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

// recorder builds stages which append to a shared log.
type recorder struct {
	calls []string
}

func (r *recorder) stage(name string, initErr error) stage {
	return stage{
		name: name,
		init: func() error {
			r.calls = append(r.calls, "init "+name)
			return initErr
		},
		cleanup: func() {
			r.calls = append(r.calls, "clean "+name)
		},
	}
}

func (r *recorder) loop(err error) func() error {
	return func() error {
		r.calls = append(r.calls, "loop")
		return err
	}
}

func TestRunStages(t *testing.T) {
	g := NewWithT(t)

	r := &recorder{}
	err := runStages([]stage{r.stage("window", nil), r.stage("gl", nil)}, r.loop(nil))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r.calls).To(Equal([]string{
		"init window", "init gl", "loop", "clean gl", "clean window",
	}))
}

func TestRunStagesLaterFailureCleansEarlierStages(t *testing.T) {
	g := NewWithT(t)

	compileErr := errors.New("vertex shader: failed to compile")
	resources := stage{
		name: "createResources",
		init: func() error { return compileErr },
	}

	r := &recorder{}
	err := runStages([]stage{r.stage("window", nil), r.stage("gl", nil), resources}, r.loop(nil))
	g.Expect(err).To(MatchError(compileErr))
	g.Expect(err.Error()).To(HavePrefix("createResources: "))
	g.Expect(r.calls).To(Equal([]string{
		"init window", "init gl", "clean gl", "clean window",
	}))
}

func TestRunStagesFailedStageIsNotCleaned(t *testing.T) {
	g := NewWithT(t)

	initErr := errors.New("no display")
	r := &recorder{}
	err := runStages([]stage{r.stage("window", initErr), r.stage("gl", nil)}, r.loop(nil))
	g.Expect(err).To(MatchError(initErr))
	g.Expect(r.calls).To(Equal([]string{"init window"}))
}

func TestRunStagesLoopError(t *testing.T) {
	g := NewWithT(t)

	loopErr := errors.New("context lost")
	r := &recorder{}
	err := runStages([]stage{r.stage("window", nil)}, r.loop(loopErr))
	g.Expect(err).To(MatchError(loopErr))
	g.Expect(err.Error()).To(HavePrefix("mainLoop: "))
	g.Expect(r.calls).To(Equal([]string{"init window", "loop", "clean window"}))
}
