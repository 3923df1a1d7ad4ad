// ABOUTME: Profile fields and daily water intake.
// ABOUTME: Height and nickname are overwritten wholesale without validation.
package store

import "go.uber.org/zap"

const (
	// MaxWaterGlasses caps the glasses logged in one day.
	MaxWaterGlasses = 20

	// DefaultWaterGoal is the daily glass target.
	DefaultWaterGoal = 8
)

// SetHeight overwrites the height in centimeters.
func (s *Store) SetHeight(cm float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.height = cm
	s.logger.Debug("height set", zap.Float64("height", cm))
}

// SetNickname overwrites the nickname.
func (s *Store) SetNickname(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nickname = name
	s.logger.Debug("nickname set", zap.String("nickname", name))
}

// Height returns the height in centimeters.
func (s *Store) Height() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Nickname returns the nickname, which may be empty.
func (s *Store) Nickname() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nickname
}

// AddWater logs one glass for today and returns today's count.
func (s *Store) AddWater() int {
	return s.adjustWater(1)
}

// RemoveWater takes back one glass for today and returns today's count.
func (s *Store) RemoveWater() int {
	return s.adjustWater(-1)
}

// AdjustWater adds delta glasses (negative removes) in one step and
// returns today's count, clamped to [0, MaxWaterGlasses].
func (s *Store) AdjustWater(delta int) int {
	return s.adjustWater(delta)
}

func (s *Store) adjustWater(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.today()
	delta = max(-MaxWaterGlasses, min(delta, MaxWaterGlasses))
	count := max(0, min(s.water[day]+delta, MaxWaterGlasses))
	s.water[day] = count
	s.logger.Debug("water intake changed", zap.String("date", day), zap.Int("glasses", count))
	return count
}

// WaterToday returns the glasses logged today.
func (s *Store) WaterToday() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.water[s.today()]
}

// WaterProgress returns glasses as a percentage of goal. A non-positive
// goal yields 0.
func WaterProgress(glasses, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(glasses) / float64(goal) * 100
}
