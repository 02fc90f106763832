package cmd

import (
	"fmt"
	"sort"

	"github.com/crypto-estimators/estimator/estimator"
	"github.com/crypto-estimators/estimator/problems/le"
	"github.com/crypto-estimators/estimator/problems/minrank"
	"github.com/crypto-estimators/estimator/problems/mq"
	"github.com/crypto-estimators/estimator/problems/pe"
	"github.com/crypto-estimators/estimator/problems/pk"
	"github.com/crypto-estimators/estimator/problems/ranksd"
	"github.com/crypto-estimators/estimator/problems/rsd"
	"github.com/crypto-estimators/estimator/problems/sd"
	"github.com/crypto-estimators/estimator/schemes/bike"
	"github.com/crypto-estimators/estimator/schemes/mayo"
	"github.com/crypto-estimators/estimator/schemes/uov"
)

// familyBuilder constructs an Estimator from a family- or scheme-level
// parameter bag. params holds the instance's integer fields, keyed by
// their lowercase name (e.g. "n", "k", "w"). excluded filters the
// family's own algorithm registry; innerExcluded additionally filters
// the internal problems/sd sub-estimator for the LE/PE/PK families
// (ignored by every other family).
type familyBuilder func(params map[string]int, excluded, innerExcluded []string) (*estimator.Estimator, error)

// families maps the CLI-facing family/scheme name to its builder and
// registry ID, covering every supported problem family and scheme.
var families = map[string]struct {
	builder  familyBuilder
	familyID string
}{
	"sd":      {buildSD, sd.FamilyID},
	"mq":      {buildMQ, mq.FamilyID},
	"le":      {buildLE, le.FamilyID},
	"pe":      {buildPE, pe.FamilyID},
	"pk":      {buildPK, pk.FamilyID},
	"minrank": {buildMinRank, minrank.FamilyID},
	"rsd":     {buildRSD, rsd.FamilyID},
	"ranksd":  {buildRankSD, ranksd.FamilyID},
	"bike":    {buildBIKE, sd.FamilyID},
	"mayo":    {buildMAYO, mq.FamilyID},
	"uov":     {buildUOV, mq.FamilyID},
}

// familyNames returns every registered family/scheme name, sorted.
func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildSD(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	problem, err := sd.NewProblem(sd.Parameters{N: p["n"], K: p["k"], W: p["w"]})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, sd.FamilyID, excluded)
}

func buildMQ(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	problem, err := mq.NewProblem(mq.Parameters{N: p["n"], M: p["m"], Q: p["q"]})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, mq.FamilyID, excluded)
}

func buildLE(p map[string]int, excluded, innerExcluded []string) (*estimator.Estimator, error) {
	problem, err := le.NewProblem(le.Parameters{N: p["n"], K: p["k"], Q: p["q"], InnerExcludedAlgorithms: innerExcluded})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, le.FamilyID, excluded)
}

func buildPE(p map[string]int, excluded, innerExcluded []string) (*estimator.Estimator, error) {
	problem, err := pe.NewProblem(pe.Parameters{N: p["n"], K: p["k"], Q: p["q"], InnerExcludedAlgorithms: innerExcluded})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, pe.FamilyID, excluded)
}

func buildPK(p map[string]int, excluded, innerExcluded []string) (*estimator.Estimator, error) {
	problem, err := pk.NewProblem(pk.Parameters{N: p["n"], K: p["k"], Q: p["q"], InnerExcludedAlgorithms: innerExcluded})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, pk.FamilyID, excluded)
}

func buildMinRank(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	problem, err := minrank.NewProblem(minrank.Parameters{N: p["n"], M: p["m"], K: p["k"], R: p["r"], Q: p["q"]})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, minrank.FamilyID, excluded)
}

func buildRSD(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	problem, err := rsd.NewProblem(rsd.Parameters{N: p["n"], K: p["k"], W: p["w"], Blocks: p["blocks"]})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, rsd.FamilyID, excluded)
}

func buildRankSD(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	problem, err := ranksd.NewProblem(ranksd.Parameters{N: p["n"], K: p["k"], R: p["r"], Q: p["q"], M: p["m"]})
	if err != nil {
		return nil, err
	}
	return estimator.NewEstimator(problem, ranksd.FamilyID, excluded)
}

func buildBIKE(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	return bike.NewEstimator(bike.Parameters{R: p["r"], W: p["w"], T: p["t"], ExcludedAlgorithms: excluded})
}

func buildMAYO(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	return mayo.NewEstimator(mayo.Parameters{N: p["n"], M: p["m"], O: p["o"], K: p["k"], Q: p["q"], ExcludedAlgorithms: excluded})
}

func buildUOV(p map[string]int, excluded, _ []string) (*estimator.Estimator, error) {
	return uov.NewEstimator(uov.Parameters{N: p["n"], M: p["m"], Q: p["q"], ExcludedAlgorithms: excluded})
}

// lookupFamily returns the named family's builder and registry ID, or an
// error listing the valid names.
func lookupFamily(name string) (familyBuilder, string, error) {
	f, ok := families[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown family/scheme %q; valid names are %v", name, familyNames())
	}
	return f.builder, f.familyID, nil
}
