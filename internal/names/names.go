// Package names holds the name pools used when generating congregation
// members and staff candidates.
package names

import "github.com/graceworks/steeple/internal/entropy"

var firstNames = []string{
	"James", "John", "Robert", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Steven",
	"Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "Timothy", "Ronald",
	"Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas",
	"Mary", "Patricia", "Jennifer", "Linda", "Sarah", "Elizabeth", "Barbara",
	"Susan", "Jessica", "Karen", "Nancy", "Lisa", "Betty", "Margaret", "Sandra",
	"Ashley", "Dorothy", "Kimberly", "Emily", "Donna", "Michelle", "Carol",
	"Amanda", "Melissa", "Deborah", "Stephanie", "Rebecca", "Sharon", "Laura",
	"Rachel", "Carolyn", "Janet", "Catherine", "Maria", "Heather", "Diane",
	"Ruth", "Julie", "Olivia", "Joyce", "Virginia", "Victoria", "Grace", "Joan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen",
	"Hill", "Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera",
	"Campbell", "Mitchell", "Carter", "Roberts", "Chen", "Kim", "Park", "Patel",
}

// First returns a random first name.
func First(r *entropy.Rand) string {
	return firstNames[r.Pick(len(firstNames))]
}

// Last returns a random surname.
func Last(r *entropy.Rand) string {
	return lastNames[r.Pick(len(lastNames))]
}

// Full returns a random "First Last" name.
func Full(r *entropy.Rand) string {
	return First(r) + " " + Last(r)
}
