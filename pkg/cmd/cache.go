// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"github.com/consensys/go-bincalc/pkg/calc"
	lru "github.com/hashicorp/golang-lru"
)

// resultCache memoises the formatted results of evaluating expressions.  Since
// evaluation is deterministic, failures are cached as well.
type resultCache struct {
	arc    *lru.ARCCache
	hits   uint
	misses uint
}

type cachedResult struct {
	output string
	err    error
}

// Construct a cache holding up to size results.  A size of zero gives a nil
// cache, which simply evaluates every expression.
func newResultCache(size uint) (*resultCache, error) {
	if size == 0 {
		return nil, nil
	}
	//
	arc, err := lru.NewARC(int(size))
	if err != nil {
		return nil, err
	}
	//
	return &resultCache{arc: arc}, nil
}

// Evaluate an expression, consulting the cache first.
func (p *resultCache) Evaluate(expr string) (string, error) {
	if p == nil {
		return calc.EvaluateString(expr)
	}
	//
	if v, ok := p.arc.Get(expr); ok {
		p.hits++
		result := v.(cachedResult)
		//
		return result.output, result.err
	}
	//
	p.misses++
	output, err := calc.EvaluateString(expr)
	p.arc.Add(expr, cachedResult{output, err})
	//
	return output, err
}

// Hits returns the number of evaluations answered from the cache.
func (p *resultCache) Hits() uint {
	if p == nil {
		return 0
	}
	//
	return p.hits
}

// Misses returns the number of evaluations not answered from the cache.
func (p *resultCache) Misses() uint {
	if p == nil {
		return 0
	}
	//
	return p.misses
}
