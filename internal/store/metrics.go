// ABOUTME: Derived health metrics computed from store state.
// ABOUTME: Current weight, BMI, BMI category, and weight-goal progress.
package store

import "github.com/harperreed/balance/internal/models"

// CurrentWeight returns the weight of the latest-dated entry. Among
// entries sharing that date the most recently inserted wins.
func (s *Store) CurrentWeight() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentWeight()
}

func (s *Store) currentWeight() (float64, bool) {
	if len(s.weightEntries) == 0 {
		return 0, false
	}
	return s.weightEntries[len(s.weightEntries)-1].Weight, true
}

// BMI returns the body mass index for the current weight and height.
// It reports false when there is no positive weight or height.
func (s *Store) BMI() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bmi()
}

func (s *Store) bmi() (float64, bool) {
	w, ok := s.currentWeight()
	if !ok || w <= 0 {
		return 0, false
	}
	return models.CalculateBMI(s.height, w)
}

// BMICategory returns the band for the current BMI, or Unknown.
func (s *Store) BMICategory() models.BMICategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bmiCategory()
}

func (s *Store) bmiCategory() models.BMICategory {
	bmi, ok := s.bmi()
	if !ok {
		return models.BMIUnknown
	}
	return models.CategorizeBMI(bmi)
}

// WeightProgress returns the percentage of the goal achieved, capped at
// 100. It is 0 without a goal or weigh-in and 100 when start equals
// target. Gaining past the start weight yields a negative value.
func (s *Store) WeightProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weightProgress()
}

func (s *Store) weightProgress() float64 {
	if s.goal == nil {
		return 0
	}
	current, ok := s.currentWeight()
	if !ok {
		return 0
	}

	totalToLose := s.goal.StartWeight - s.goal.TargetWeight
	if totalToLose == 0 {
		return 100
	}
	lostSoFar := s.goal.StartWeight - current
	return min(lostSoFar/totalToLose*100, 100)
}
