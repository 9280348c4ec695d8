package regions

import "github.com/gilby125/award-distance/pkg/geo"

// defaultSet holds the chart polygons as latitude/longitude vertices.
// Pacific vertices east of the antimeridian are written past 180 rather than
// wrapped to negative longitudes.
var defaultSet = Set{
	{
		Name:    NorthAmerica,
		Polygon: geo.Polygon{
			{Lat: 82.7870014, Lon: -59.3787003},
			{Lat: 84.5580571, Lon: -81.2109375},
			{Lat: 84.35484, Lon: -96.1241913},
			{Lat: 82.2149613, Lon: -147.4523163},
			{Lat: 72.357038, Lon: -167.8456879},
			{Lat: 67.0429737, Lon: -168.0031872},
			{Lat: 66.0599687, Lon: -168.0064058},
			{Lat: 65.4692211, Lon: -168.7534761},
			{Lat: 65.3182635, Lon: -169.6983004},
			{Lat: 63.8474599, Lon: -171.8076754},
			{Lat: 62.3218735, Lon: -171.4059448},
			{Lat: 51.4715465, Lon: -179.4918823},
			{Lat: 11.4645473, Lon: -166.8356323},
			{Lat: 5.0589693, Lon: -95.1199722},
			{Lat: 6.1842462, Lon: -78.5302734},
			{Lat: 11.0059045, Lon: -76.3769531},
			{Lat: 13.3254849, Lon: -71.015625},
			{Lat: 11.4800246, Lon: -63.2373047},
			{Lat: 11.1568453, Lon: -61.8530273},
			{Lat: 10.7253813, Lon: -61.7651367},
			{Lat: 9.9904908, Lon: -61.8530273},
			{Lat: 9.7090571, Lon: -60.4248047},
			{Lat: 12.7260843, Lon: -55.4150391},
			{Lat: 47.4034616, Lon: -45.1318359},
			{Lat: 74.6822527, Lon: -70.452919},
			{Lat: 76.8399566, Lon: -74.671669},
			{Lat: 78.0975167, Lon: -74.5837784},
			{Lat: 80.4297022, Lon: -67.7283096},
			{Lat: 81.2142764, Lon: -64.2126846},
			{Lat: 81.9349958, Lon: -61.312294},
			{Lat: 82.7870014, Lon: -59.3787003},
		},
	},
	{
		Name:    Atlantic,
		Polygon: geo.Polygon{
			{Lat: 82.9186898, Lon: -56.4257813},
			{Lat: 80.8728272, Lon: -66.4453125},
			{Lat: 77.7302824, Lon: -73.828125},
			{Lat: 58.0778763, Lon: -49.5703125},
			{Lat: 19.2884613, Lon: -27.1142578},
			{Lat: -4.7646253, Lon: -15.6884766},
			{Lat: -38.5669585, Lon: 16.1279297},
			{Lat: -44.0130647, Lon: 41.4562225},
			{Lat: -27.4357746, Lon: 65.8898163},
			{Lat: -13.410994, Lon: 76.9921875},
			{Lat: -4.3902289, Lon: 82.3535156},
			{Lat: 14.3069695, Lon: 88.9453125},
			{Lat: 20.6327843, Lon: 91.4501953},
			{Lat: 27.4887812, Lon: 96.9873047},
			{Lat: 28.6134594, Lon: 97.2509766},
			{Lat: 29.4587312, Lon: 95.3173828},
			{Lat: 28.4203911, Lon: 92.9443359},
			{Lat: 27.4887812, Lon: 88.9013672},
			{Lat: 29.8025179, Lon: 82.0898438},
			{Lat: 31.6561577, Lon: 79.2333984},
			{Lat: 32.4383657, Lon: 78.6621094},
			{Lat: 34.672041, Lon: 78.75},
			{Lat: 36.917372, Lon: 75.1464844},
			{Lat: 39.5175493, Lon: 73.8573074},
			{Lat: 40.3933652, Lon: 74.9119949},
			{Lat: 42.0459783, Lon: 80.0096512},
			{Lat: 44.9771853, Lon: 80.6248856},
			{Lat: 45.2872066, Lon: 82.4705887},
			{Lat: 47.1119624, Lon: 83.4373856},
			{Lat: 46.9921969, Lon: 85.4588699},
			{Lat: 48.4116562, Lon: 85.6346512},
			{Lat: 48.9917075, Lon: 87.3924637},
			{Lat: 49.9624849, Lon: 86.6893387},
			{Lat: 49.9624849, Lon: 85.0194168},
			{Lat: 51.135201, Lon: 83.7010574},
			{Lat: 51.0247691, Lon: 79.9217606},
			{Lat: 54.0696637, Lon: 76.7576981},
			{Lat: 53.3937708, Lon: 73.9451981},
			{Lat: 55.5385395, Lon: 70.3416824},
			{Lat: 54.0180574, Lon: 61.4647293},
			{Lat: 56.4190289, Lon: 60.0807953},
			{Lat: 59.6724216, Lon: 59.7292328},
			{Lat: 62.9594376, Lon: 59.5534515},
			{Lat: 65.1869205, Lon: 61.1354828},
			{Lat: 66.3412251, Lon: 63.0690765},
			{Lat: 67.6127514, Lon: 66.8483734},
			{Lat: 69.2282846, Lon: 65.7057953},
			{Lat: 71.4750154, Lon: 64.2631531},
			{Lat: 75.1954423, Lon: 71.1000824},
			{Lat: 77.3593367, Lon: 74.7914886},
			{Lat: 81.7286224, Lon: 73.9125824},
			{Lat: 82.6921109, Lon: 9.3974304},
			{Lat: 82.9186898, Lon: -56.4257813},
		},
	},
	{
		Name:    Pacific,
		Polygon: geo.Polygon{
			{Lat: 49.4587523, Lon: 87.6832581},
			{Lat: 42.8975976, Lon: 80.3883362},
			{Lat: 39.999742, Lon: 75.2906799},
			{Lat: 34.8380407, Lon: 78.9820862},
			{Lat: 28.7935375, Lon: 84.6949768},
			{Lat: 28.089549, Lon: 87.2922134},
			{Lat: 28.1964137, Lon: 90.0413704},
			{Lat: 29.8043054, Lon: 95.993557},
			{Lat: 28.2327173, Lon: 97.5573921},
			{Lat: 19.3566599, Lon: 90.9633636},
			{Lat: 10.7759758, Lon: 89.9684143},
			{Lat: -39.4139161, Lon: 94.4940948},
			{Lat: -60.0648405, Lon: 183.8671875},
			{Lat: -39.7156381, Lon: 188.9099121},
			{Lat: -25.1496356, Lon: 192.6280975},
			{Lat: -22.789476, Lon: 204.0339661},
			{Lat: 15.2441086, Lon: 179.9529648},
			{Lat: 31.2747363, Lon: 178.4601974},
			{Lat: 47.754098, Lon: 181.40625},
			{Lat: 62.8999099, Lon: 183.3089447},
			{Lat: 66.2886792, Lon: 191.219101},
			{Lat: 74.2506085, Lon: 161.1605072},
			{Lat: 76.9129973, Lon: 76.4339447},
			{Lat: 70.6014424, Lon: 64.8323822},
			{Lat: 54.4504805, Lon: 60.2620697},
			{Lat: 55.3599903, Lon: 69.2269135},
			{Lat: 55.059102, Lon: 76.609726},
			{Lat: 50.0425888, Lon: 87.156601},
			{Lat: 49.4587523, Lon: 87.6832581},
		},
	},
	{
		Name:    SouthAmerica,
		Polygon: geo.Polygon{
			{Lat: 12.7260843, Lon: -55.4150391},
			{Lat: 9.7090571, Lon: -60.4248047},
			{Lat: 9.9904908, Lon: -61.8530273},
			{Lat: 10.7253813, Lon: -61.7651367},
			{Lat: 11.1568453, Lon: -61.8530273},
			{Lat: 11.4800246, Lon: -63.2373047},
			{Lat: 13.3254849, Lon: -71.015625},
			{Lat: 11.0059045, Lon: -76.3769531},
			{Lat: 6.1842462, Lon: -78.5302734},
			{Lat: 3.2786581, Lon: -94.3965912},
			{Lat: -45.5813675, Lon: -89.6031189},
			{Lat: -51.3674937, Lon: -84.7265625},
			{Lat: -59.0596238, Lon: -75.7617188},
			{Lat: -58.3422988, Lon: -61.6992188},
			{Lat: -57.4549243, Lon: -35.2441406},
			{Lat: -52.4137285, Lon: -27.0703125},
			{Lat: -43.8795827, Lon: -32.6074219},
			{Lat: -16.1457623, Lon: -24.7896194},
			{Lat: 0.5112008, Lon: -25.6685257},
			{Lat: 12.6245927, Lon: -55.6392288},
		},
	},
}
