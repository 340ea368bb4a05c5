/*
Package stations reads the station dataset that feeds the network build.

The dataset is a CSV file with one row per physical station:

	STN_NO,STN_NAME,Latitude,Longitude
	NS24/NE6/CC1,Dhoby Ghaut,1.299156,103.845736

STN_NO may hold several codes joined by "/" when the station serves more
than one line. Splitting and parsing the codes is the network package's job;
this package only checks that every row carries usable coordinates.

A row whose latitude or longitude is not a decimal number fails the whole
read: the network cannot be built from a partial dataset.
*/
package stations
