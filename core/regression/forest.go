package regression

import (
	"errors"
	"fmt"
)

// LeafFeature marks a tree node without a split.
const LeafFeature = -1

// errTreeCycle is returned when walking a tree never reaches a leaf.
var errTreeCycle = errors.New("forest: tree walk did not reach a leaf")

// Node is one node of a regression tree. Rows with x[Feature] <= Threshold
// go Left, the others go Right. Leaves carry Value = [fuel, co2].
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

// Tree is a flat list of nodes rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// ForestConf holds the trees of a forest model.
type ForestConf struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// Forest averages the leaf values of its trees.
type Forest struct {
	numFeatures int
	trees       []Tree
}

// NewForest validates the tree structure and builds the model.
func NewForest(c ForestConf) (*Forest, error) {
	if c.NumFeatures <= 0 {
		return nil, fmt.Errorf("forest: num_features must be positive")
	}
	if len(c.Trees) == 0 {
		return nil, fmt.Errorf("forest: no trees")
	}
	for ti, t := range c.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("forest: tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature == LeafFeature {
				if len(n.Value) != 2 {
					return nil, fmt.Errorf("forest: tree %d leaf %d needs 2 values", ti, ni)
				}
				continue
			}
			if n.Feature < 0 || n.Feature >= c.NumFeatures {
				return nil, fmt.Errorf("forest: tree %d node %d feature %d out of range", ti, ni, n.Feature)
			}
			if n.Left <= ni || n.Left >= len(t.Nodes) || n.Right <= ni || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("forest: tree %d node %d has invalid children", ti, ni)
			}
		}
	}
	return &Forest{numFeatures: c.NumFeatures, trees: c.Trees}, nil
}

// NumFeatures implements Regressor.
func (f *Forest) NumFeatures() int { return f.numFeatures }

// Predict implements Regressor.
func (f *Forest) Predict(x []float64) (Output, error) {
	if err := checkInput(f, x); err != nil {
		return Output{}, err
	}
	var sum Output
	for _, t := range f.trees {
		leaf, err := t.leaf(x)
		if err != nil {
			return Output{}, err
		}
		sum.FuelL += leaf.Value[0]
		sum.CO2Kg += leaf.Value[1]
	}
	n := float64(len(f.trees))
	return checkOutput(Output{FuelL: sum.FuelL / n, CO2Kg: sum.CO2Kg / n})
}

func (t Tree) leaf(x []float64) (Node, error) {
	i := 0
	// children always have a larger index, so a walk takes at most len(Nodes) steps
	for steps := 0; steps < len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Feature == LeafFeature {
			return n, nil
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return Node{}, errTreeCycle
}
